package stealth

import "github.com/rs/zerolog"

// logger is used only for coarse, non-secret tracing: which operation ran
// and which resulting address it produced. It never receives a private
// scalar. The zero value is silent.
var logger = zerolog.Nop()

// SetLogger installs l as this package's tracing logger. Pass
// zerolog.Nop() (the default) to silence tracing again.
func SetLogger(l zerolog.Logger) {
	logger = l
}
