package turboquery

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// SetupProcedure is the paging procedure installed by the embedded setup script.
// Set Options.ProcedureName to it to page through the bundled procedure.
//
// It runs @Query as a derived table ordered by its first column, so the
// query must be a full SELECT whose first column is a unique key for pages
// to be stable.
const SetupProcedure = "TurboQuery.SP_BatchingRecords"

//go:embed scripts/setup.sql
var scripts embed.FS

var embeddedScript = scriptSource{fsys: scripts, name: "scripts/setup.sql"}

type scriptSource struct {
	fsys fs.FS
	name string
}

// LoadScript reads a setup script. A missing file is ErrScriptNotFound and a
// blank one is ErrEmptyScript.
func LoadScript(fsys fs.FS, name string) (string, error) {
	if fsys == nil {
		return "", fmt.Errorf("%w: %s", ErrScriptNotFound, name)
	}
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrScriptNotFound, name)
		}
		return "", err
	}
	if strings.TrimSpace(string(b)) == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyScript, name)
	}
	return string(b), nil
}

// Bootstrap runs the setup script as a single statement.
func (c *Client) Bootstrap(ctx context.Context) error {
	script, err := LoadScript(c.script.fsys, c.script.name)
	if err != nil {
		return err
	}
	_, err = NewSterile(c).exec(ctx, OpBootstrap, script, nil)
	return err
}
