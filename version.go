package structdict

// Version is the current structdict release.
const Version = "0.1.0"
