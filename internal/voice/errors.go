package voice

import "smartboutique/internal/services"

// ErrNoRecognizer reports that no speech engine is present in the running
// environment.
var ErrNoRecognizer = services.Wrap(services.ErrUnsupported, "voice", "listen",
	"speech recognition is not available in this environment", nil)
