package domain

// Client is an agency customer whose media coverage is tracked.
type Client struct {
	ID      int
	Name    string
	LogoURL string
}
