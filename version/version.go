// Package version holds the build version, set with
// -ldflags "-X github.com/0wafi0/ng-snake/version.Version=..."
package version

// Version is the version of the snake binary.
var Version = "dev"
