package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/finlit/spellbook/internal/ui/theme"
)

const bannerArt = `
 ███████╗██████╗ ███████╗██╗     ██╗     ██████╗  ██████╗  ██████╗ ██╗  ██╗
 ██╔════╝██╔══██╗██╔════╝██║     ██║     ██╔══██╗██╔═══██╗██╔═══██╗██║ ██╔╝
 ███████╗██████╔╝█████╗  ██║     ██║     ██████╔╝██║   ██║██║   ██║█████╔╝
 ╚════██║██╔═══╝ ██╔══╝  ██║     ██║     ██╔══██╗██║   ██║██║   ██║██╔═██╗
 ███████║██║     ███████╗███████╗███████╗██████╔╝╚██████╔╝╚██████╔╝██║  ██╗
 ╚══════╝╚═╝     ╚══════╝╚══════╝╚══════╝╚═════╝  ╚═════╝  ╚═════╝ ╚═╝  ╚═╝`

const bannerCompact = "S P E L L B O O K"

// RenderBanner returns the SPELLBOOK banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 78 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 78 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
