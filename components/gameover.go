package components

import "github.com/yohamta/donburi"

// ScreenOption is the choice on a result screen. Primary is the first entry
// (retry, continue or play again) and ScreenMainMenu returns to the main menu.
type ScreenOption int

const (
	ScreenPrimary ScreenOption = iota
	ScreenMainMenu
)

// ScreenMenuData stores the cursor of a game over, level complete or victory screen
type ScreenMenuData struct {
	SelectedOption ScreenOption
	Score          int
}

var ScreenMenu = donburi.NewComponentType[ScreenMenuData]()
