package worker

import (
	"fmt"
	"os"
)

func readFileDirect(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	return content, nil
}
</content>
