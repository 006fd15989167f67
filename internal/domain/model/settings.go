package model

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Settings keys owned by the external configuration collaborator.
const (
	SettingReferralReward  = "referral_reward"
	SettingOwnerID         = "owner_id"
	SettingOrderAdminID    = "order_admin_id"
	SettingSupportAdminID  = "support_admin_id"
	SettingOfficialChannel = "official_channel"
	SettingAllowStars      = "allow_stars_payment"
	SettingAllowPremium    = "allow_premium_purchase"
)

// DefaultReferralReward is paid when no reward rate is configured.
var DefaultReferralReward = decimal.RequireFromString("0.5")

// Settings is a read-only snapshot of the flat key/value configuration.
type Settings map[string]string

// ReferralReward returns the configured reward rate, or the default when
// the key is absent or malformed.
func (s Settings) ReferralReward() decimal.Decimal {
	raw, ok := s[SettingReferralReward]
	if !ok || raw == "" {
		return DefaultReferralReward
	}
	reward, err := decimal.NewFromString(raw)
	if err != nil || reward.IsNegative() {
		return DefaultReferralReward
	}
	return reward
}

// AllowStarsPayment reports whether stars purchases are enabled shop-wide.
func (s Settings) AllowStarsPayment() bool {
	return s[SettingAllowStars] != "false"
}

// AllowPremiumPurchase reports whether premium purchases are enabled.
func (s Settings) AllowPremiumPurchase() bool {
	return s[SettingAllowPremium] != "false"
}

func (s Settings) idMatches(key string, id int64) bool {
	raw := s[key]
	if raw == "" {
		return false
	}
	configured, err := strconv.ParseInt(raw, 10, 64)
	return err == nil && configured == id
}

// IsOwner reports whether the caller is the shop owner.
func (s Settings) IsOwner(id int64) bool {
	return s.idMatches(SettingOwnerID, id)
}

// CanManageOrders reports whether the caller may transition orders and
// deposits. Owner and order admin hold this role.
func (s Settings) CanManageOrders(id int64) bool {
	return s.IsOwner(id) || s.idMatches(SettingOrderAdminID, id)
}

// CanViewSupport reports whether the caller may read user histories.
// All three operator roles hold it.
func (s Settings) CanViewSupport(id int64) bool {
	return s.CanManageOrders(id) || s.idMatches(SettingSupportAdminID, id)
}

// AdminChatID returns the chat that receives order and deposit
// notifications: the owner when configured, otherwise the order admin.
func (s Settings) AdminChatID() (int64, bool) {
	for _, key := range []string{SettingOwnerID, SettingOrderAdminID} {
		if raw := s[key]; raw != "" {
			if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
				return id, true
			}
		}
	}
	return 0, false
}
