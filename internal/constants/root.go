package constants

const (
	AppName            = "habitkit"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/habitkit/habitkit.db"
	Version            = "v0.1.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// KeyringConfigValue selects the PostgreSQL connection string stored in the OS keyring.
	KeyringConfigValue = "keyring"

	// Environment variables
	EnvConfig           = "HABITKIT_CONFIG"
	EnvDBConnection     = "HABITKIT_DB_CONNECTION"
	EnvDebug            = "HABITKIT_DEBUG"
	RedisKeyPrefix      = AppName + ":"
	PostgresSchema      = AppName
	DaysPerWeek         = 7
	DefaultRecentDays   = 7
	DefaultLogFileName  = "habitkit.log"
	DefaultLogDirName   = "logs"
	JSONConfigExtension = ".json"
)

// Storage keys. The names match the keys the web client writes so that
// exported data can be loaded unchanged.
const (
	KeyHabits      = "habit_tracker_habits"
	KeyCompletions = "habit_tracker_completions"
	KeyUser        = "habit_tracker_user"
	KeyAuthToken   = "habit_tracker_auth_token"
)

// StorageKeys returns every key owned by the application, in a stable order.
func StorageKeys() []string {
	return []string{KeyHabits, KeyCompletions, KeyUser, KeyAuthToken}
}
