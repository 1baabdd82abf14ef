// Package pathutils normalizes user supplied file paths for the isapool commands.
package pathutils
