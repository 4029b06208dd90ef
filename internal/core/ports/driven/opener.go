package driven

// Opener performs navigation side effects outside the session.
type Opener interface {
	// Open hands a URL to the system browser.
	Open(url string) error

	// Copy places text on the system clipboard.
	Copy(text string) error
}
