package menu

import (
	"fmt"
	"io"

	"github.com/noah-isme/campus-mis/internal/codec"
	"github.com/noah-isme/campus-mis/internal/registry"
	apperrors "github.com/noah-isme/campus-mis/pkg/errors"
	"github.com/noah-isme/campus-mis/pkg/prompt"
)

type saveLoadMenu struct {
	reg   *registry.Registry
	codec *codec.Codec
	path  string
	in    *prompt.Reader
	out   io.Writer
}

func (m *saveLoadMenu) show() {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, " ~~~~~ Save/Load Menu ~~~~~")
		fmt.Fprintln(m.out, "1. Save data")
		fmt.Fprintln(m.out, "2. Load data")
		fmt.Fprintln(m.out, "3. Back")

		choice, ok := m.in.ReadInt("Choose an option (1-3):")
		if !ok {
			return
		}
		switch choice {
		case 1:
			if err := m.codec.Save(m.reg, m.path); err != nil {
				fmt.Fprintf(m.out, "Error saving data (%s): %v\n", apperrors.FromError(err).Code, err)
				continue
			}
			fmt.Fprintln(m.out, "Data saved successfully to", m.path)
		case 2:
			if err := m.codec.Load(m.reg, m.path); err != nil {
				if apperrors.HasCode(err, apperrors.ErrNotFound.Code) {
					fmt.Fprintln(m.out, "No saved data found at", m.path)
					continue
				}
				fmt.Fprintf(m.out, "Error loading data (%s): %v\n", apperrors.FromError(err).Code, err)
				continue
			}
			fmt.Fprintln(m.out, "Data loaded successfully from", m.path)
		case 3:
			return
		default:
			fmt.Fprintln(m.out, "Please choose an option between 1 and 3.")
		}
	}
}
