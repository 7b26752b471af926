package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// TintShader flashes a sprite toward a solid colour, used for hurt feedback.
	TintShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders. Renderers draw untinted
// sprites when TintShader is nil.
func LoadShaders() error {
	src, err := shaderFS.ReadFile("shaders/tint.kage")
	if err != nil {
		return fmt.Errorf("read tint shader: %w", err)
	}
	TintShader, err = ebiten.NewShader(src)
	if err != nil {
		return fmt.Errorf("compile tint shader: %w", err)
	}
	return nil
}
