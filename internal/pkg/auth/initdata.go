package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidInitData = errors.New("invalid init data")

// Validator verifies Telegram WebApp initData signatures. The signing key
// is HMAC-SHA256 of the bot token with the constant key "WebAppData", per
// the WebApp validation scheme.
type Validator struct {
	secret []byte
	ttl    time.Duration
}

// Options tunes init data validation.
type Options struct {
	TTL time.Duration
}

// NewValidator builds a Validator for the given bot token.
func NewValidator(botToken string, opts Options) *Validator {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	mac := hmac.New(sha256.New, []byte("WebAppData"))
	mac.Write([]byte(botToken))
	return &Validator{secret: mac.Sum(nil), ttl: ttl}
}

type initDataUser struct {
	ID int64 `json:"id"`
}

// Validate checks the signature and freshness of raw initData and returns
// the authenticated Telegram user id.
func (v *Validator) Validate(initData string) (int64, error) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return 0, ErrInvalidInitData
	}

	gotHash := values.Get("hash")
	if gotHash == "" {
		return 0, ErrInvalidInitData
	}
	values.Del("hash")

	pairs := make([]string, 0, len(values))
	for key := range values {
		pairs = append(pairs, key+"="+values.Get(key))
	}
	sort.Strings(pairs)

	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(strings.Join(pairs, "\n")))
	wantHash := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(wantHash), []byte(gotHash)) {
		return 0, ErrInvalidInitData
	}

	authDate, err := strconv.ParseInt(values.Get("auth_date"), 10, 64)
	if err != nil {
		return 0, ErrInvalidInitData
	}
	if time.Since(time.Unix(authDate, 0)) > v.ttl {
		return 0, ErrInvalidInitData
	}

	var user initDataUser
	if err := json.Unmarshal([]byte(values.Get("user")), &user); err != nil || user.ID == 0 {
		return 0, ErrInvalidInitData
	}

	return user.ID, nil
}
