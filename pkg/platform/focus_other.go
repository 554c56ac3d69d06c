//go:build !darwin

package platform

// IsAppActive reports true; other desktops focus shown windows themselves
func IsAppActive() bool {
	return true
}

// ActivateApp does nothing outside macOS
func ActivateApp() {}
