package constants

import "time"

const (
	AppName            = "skilltrack"
	DefaultKeyringUser = "database-connection"
	DefaultDBFileName  = "skilltrack.db"
	ConfigFileName     = "config.yaml"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// RoutineKeyDateFormat is the day suffix of the legacy habitId_yyyyMMdd routine keys
	RoutineKeyDateFormat = "20060102"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "skilltrack-"
	BackupFileSuffix = ".json"

	// Weight log retention
	MinWeightKg        = 20.0
	MaxWeightKg        = 300.0
	WeightRetentionAge = 2 // years
	WeightTrendWindow  = 7 // days

	// MasteredPercentage is the completion percentage at which a skill counts as mastered
	MasteredPercentage = 80.0

	// TrackWeightHabitName names the routine habit whose completion is derived from the weight log
	TrackWeightHabitName = "track weight"

	// Env vars
	EnvDataPath     = "SKILLTRACK_DATA"
	EnvTimezone     = "SKILLTRACK_TIMEZONE"
	EnvDBConnection = "SKILLTRACK_DB_CONNECTION"

	// Postgres
	PostgresConnectTimeout = 10 * time.Second
)

// Persisted key names, one JSON value per key.
const (
	KeySkills                    = "skilltrack.skills"
	KeyDailyCompletions          = "skilltrack.dailyCompletions"
	KeyCustomCategories          = "skilltrack.customCategories"
	KeyCompletedTaskIDs          = "skilltrack.completedTaskIds"
	KeyMorningRoutineCompletions = "skilltrack.morningRoutineCompletions"
	KeyMorningHabits             = "skilltrack.morningHabits"
	KeyMemorableMoments          = "skilltrack.memorableMoments"
	KeyRolloverTasks             = "skilltrack.rolloverTasks"
	KeyRolloverCarried           = "skilltrack.rolloverCarried"
	KeyWeightEntries             = "skilltrack.weightEntries"
)

// AllKeys lists every persisted key in load order.
var AllKeys = []string{
	KeySkills,
	KeyDailyCompletions,
	KeyCustomCategories,
	KeyCompletedTaskIDs,
	KeyMorningRoutineCompletions,
	KeyMorningHabits,
	KeyMemorableMoments,
	KeyRolloverTasks,
	KeyRolloverCarried,
	KeyWeightEntries,
}
