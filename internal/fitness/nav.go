package fitness

// Screen identifies a view in the presentation layer.
type Screen string

const (
	ScreenLanding  Screen = "landing"
	ScreenLogin    Screen = "login"
	ScreenRegister Screen = "register"

	ScreenMenu    Screen = "menu"
	ScreenSteps   Screen = "steps"
	ScreenMood    Screen = "mood"
	ScreenStats   Screen = "stats"
	ScreenProfile Screen = "profile"
	ScreenAbout   Screen = "about"
)

// authScreens are the screens of the login/register flow; protectedScreens
// require an open session. A screen in neither set is public.
var (
	authScreens = map[Screen]struct{}{
		ScreenLanding:  {},
		ScreenLogin:    {},
		ScreenRegister: {},
	}
	protectedScreens = map[Screen]struct{}{
		ScreenMenu:    {},
		ScreenSteps:   {},
		ScreenMood:    {},
		ScreenStats:   {},
		ScreenProfile: {},
		ScreenAbout:   {},
	}
)

// IsProtected reports whether s requires authentication.
func (s Screen) IsProtected() bool {
	_, ok := protectedScreens[s]
	return ok
}

// IsAuthScreen reports whether s belongs to the login/register flow.
func (s Screen) IsAuthScreen() bool {
	_, ok := authScreens[s]
	return ok
}

// Resolve decides which screen may actually be shown and whether the
// navigation chrome (bottom menu) is visible.
//
// An unauthenticated request for a protected screen degrades to the landing
// screen silently; no error is surfaced. The chrome flag is evaluated after
// the redirect, so a redirected-to-landing request never shows chrome.
// Resolve is memoryless: it is called fresh on every navigation and keeps no
// transition history.
func Resolve(requested Screen, authenticated bool) (Screen, bool) {
	effective := requested
	if !authenticated && requested.IsProtected() {
		effective = ScreenLanding
	}

	showChrome := authenticated && !effective.IsAuthScreen()
	return effective, showChrome
}

// GoBack is the hard-coded "back" target. There is no back-stack; back
// always means the menu.
func GoBack() Screen { return ScreenMenu }
