// Package layout defines the shape of a practice-workspace scaffold: the
// ordered topic names and utility filenames that drive the build, plus the
// fixed difficulty levels. It ships a built-in default layout matching the
// classic LeetCode topic list and can load and schema-validate user-supplied
// layout files.
package layout
