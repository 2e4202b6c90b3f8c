package models

// Icon names recognized by the public site. The set is closed: LookupIcon
// is total and falls back to IconCode for anything unrecognized.
const (
	IconCode       = "Code"
	IconDatabase   = "Database"
	IconPalette    = "Palette"
	IconGlobe      = "Globe"
	IconServer     = "Server"
	IconSmartphone = "Smartphone"
	IconLayout     = "Layout"
	IconGitBranch  = "GitBranch"
	IconZap        = "Zap"
	IconSettings   = "Settings"
	IconBookOpen   = "BookOpen"
	IconBrain      = "Brain"
)

// IconNames lists every valid icon key in display order.
var IconNames = []string{
	IconCode,
	IconDatabase,
	IconPalette,
	IconGlobe,
	IconServer,
	IconSmartphone,
	IconLayout,
	IconGitBranch,
	IconZap,
	IconSettings,
	IconBookOpen,
	IconBrain,
}

var iconSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(IconNames))
	for _, n := range IconNames {
		m[n] = struct{}{}
	}
	return m
}()

// ValidIcon reports whether name is a member of the icon enumeration.
func ValidIcon(name string) bool {
	_, ok := iconSet[name]
	return ok
}

// LookupIcon maps an icon name to its renderable key, substituting
// IconCode for unknown names. It never fails.
func LookupIcon(name string) string {
	if ValidIcon(name) {
		return name
	}
	return IconCode
}
