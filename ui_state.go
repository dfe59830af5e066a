package main

type page int

const (
	pageHome page = iota
	pageAbout
)

var pages = []page{pageHome, pageAbout}

func (p page) key() string {
	if p == pageAbout {
		return "app.nav.about"
	}
	return "app.nav.home"
}

type uiState struct {
	page    page
	command CommandInput

	// home page cursor: row is the button group, col the button in it
	row, col int

	terminalWidth  int
	terminalHeight int
}
