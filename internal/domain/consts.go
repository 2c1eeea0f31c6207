package domain

// Button custom IDs dispatched by the interaction router. These are stable
// identifiers baked into published messages; renaming one orphans every
// message that carries it.
const (
	ButtonOpenStatus      = "open-status"
	ButtonCloseStatus     = "close-status"
	ButtonRequestGateOpen = "request-gate-open"
	ButtonAcceptRules     = "accept-rules"
)

// Root slash command and its subcommands.
const (
	CommandRoot     = "gym"
	SubcommandSetup = "setup"
	SubcommandState = "status"
)

// AffirmativeReaction is the single emoji meaning "I will attend this slot".
// The reminder correlator looks for exactly this reaction, so it must match
// what the reconciler seeds.
const AffirmativeReaction = "👍"

// MessageFetchLimit caps how many recent messages the reminder correlator
// reads from a planning channel. Slot placeholders are posted right after
// channel creation, so they sit at the start of the history; 100 is the
// platform page maximum.
const MessageFetchLimit = 100

// DefaultSlots is the ordered list of time-slot labels seeded into every
// planning channel. Slot lookup is exact body-text equality: entries may be
// appended but never renamed, or historical sign-ups become unreachable.
var DefaultSlots = []string{
	"08:00 - 10:00",
	"10:00 - 12:00",
	"12:00 - 14:00",
	"14:00 - 16:00",
	"16:00 - 18:00",
	"18:00 - 20:00",
	"20:00 - 22:00",
	"22:00 - 00:00",
}

const (
	DefaultCategoryName     = "planning"
	DefaultDaysAhead        = 7
	DefaultPlanningCron     = "0 4 * * *"
	DefaultTimezone         = "Europe/Brussels"
	DefaultMemberRole       = "Membre"
	DefaultRemindersChannel = "rappels"
	DefaultGateLogPath      = "gate_requests.log"
	DefaultRulesLogPath     = "rules_acceptances.log"
)

// Default status images, one per state.
const (
	DefaultOpenImageURL   = "https://i.imgur.com/nQ5ZwbE.png"
	DefaultClosedImageURL = "https://i.imgur.com/lKJiT77.png"
)
