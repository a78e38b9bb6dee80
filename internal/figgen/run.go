package figgen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/alnah/go-md2tex/internal/process"
)

// generate runs one external generator under the configured timeout.
func (g *Generator) generate(ctx context.Context, src Source) error {
	ctx, cancel := context.WithTimeout(ctx, g.Timeout)
	defer cancel()

	out := OutputPath(g.OutputDir, src.Path, g.Format)
	if err := os.MkdirAll(filepath.Dir(out), 0o750); err != nil {
		return fmt.Errorf("creating figure output directory: %w", err)
	}

	var cmd *exec.Cmd
	switch src.Kind {
	case KindMermaid:
		cmd = exec.CommandContext(ctx, g.MermaidBin, "-i", src.Path, "-o", out)
	case KindPython:
		// Scripts write their own outputs; they run in the output
		// directory so relative paths land by the naming convention.
		cmd = exec.CommandContext(ctx, g.PythonBin, filepath.Base(src.Path))
		cmd.Dir = g.FiguresDir
	}

	setProcessGroup(cmd)
	cmd.Cancel = func() error {
		// Generators spawn children (browsers, matplotlib backends);
		// kill the whole group so nothing outlives the timeout.
		process.KillProcessGroup(cmd.Process.Pid)
		return cmd.Process.Kill()
	}

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w: %s after %s", ErrGeneratorTimeout, src.Path, g.Timeout)
		}
		return fmt.Errorf("%w: %s: %v: %s", ErrGeneratorFailed, src.Path, err, stderr.String())
	}
	return nil
}
