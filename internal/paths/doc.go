// Package paths resolves the directories vmsg reads its configuration and
// catalogs from.
//
// Locations follow the XDG Base Directory Specification through
// github.com/adrg/xdg, so on Linux the defaults are:
//
//	~/.config/vmsg/config.yaml     application config
//	~/.config/vmsg/catalogs/       catalog search directory
//
// VMSG_CONFIG_DIR replaces ~/.config/vmsg entirely, which keeps tests and
// CI runs away from the user's real configuration.
package paths
