package storage

// Logical keys in the state store. Each key has exactly one writer component;
// any component may read any key.
const (
	// KeySession holds the username of the authenticated user. Written by the
	// session manager, cleared on every process start.
	KeySession = "sessionUser"

	// KeyRegisteredUser / KeyRegisteredPass hold the single stored credential.
	// Plaintext on purpose: this is a local demo login, not real security.
	KeyRegisteredUser = "registeredUser"
	KeyRegisteredPass = "registeredPass"

	// KeySteps is the running step counter as decimal integer text.
	KeySteps = "steps"

	// KeyMood is today's mood label.
	KeyMood = "mood"

	// KeyStepHistory is a JSON object mapping YYYY-MM-DD to step totals.
	KeyStepHistory = "stepHistory"

	// KeyResetDone marks the one-time purge of legacy keys as complete.
	KeyResetDone = "fitlife_reset_done_v1"

	// KeyInstallID is a UUID minted on first bootstrap.
	KeyInstallID = "installID"
)

// LegacyKeys were written by earlier versions of the app and are purged once
// at bootstrap so stale data cannot cause an auto-login.
var LegacyKeys = []string{"userName", "user", "pass"}
