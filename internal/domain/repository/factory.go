package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Orders() OrderRepository
	Deposits() DepositRepository
	Referrals() ReferralRepository
	Catalog() CatalogRepository
	Settings() SettingsRepository
	Stats() StatsRepository
}
