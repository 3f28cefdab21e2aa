package buffer

// Headless is a backend with no terminal at all: frames stay in memory and
// keys are pushed by the caller. Tests and scripted runs use it.
type Headless struct {
	*Surface
	*KeyQueue
}

// NewHeadless creates a headless backend.
func NewHeadless() *Headless {
	return &Headless{
		Surface:  NewSurface(),
		KeyQueue: NewKeyQueue(64),
	}
}
