package output

import (
	"io"
	"os"

	"github.com/masmgr/git-report/internal/git"
)

const (
	reportDateLayout     = "2006-01-02"
	reportDateTimeLayout = "2006-01-02 15:04"
)

func openOutputWriter(outputPath string) (io.Writer, *os.File, error) {
	if outputPath == "" {
		return os.Stdout, nil, nil
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}

func limitTop(commits []git.Commit, top int) []git.Commit {
	if top <= 0 || top >= len(commits) {
		return commits
	}
	return commits[:top]
}
