package version

// Version is the current release version of sqlfmt.
const Version = "0.1.0"
