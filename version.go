package stems

// Version identifies the library release. Overridden at build time via
// -ldflags "-X github.com/jwlunsford/stems.Version=...".
var Version = "0.2.0"
