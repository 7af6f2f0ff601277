package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
)

// DocumentDiff computes a human-readable, structure-aware diff between two
// JSON or YAML documents. It returns an empty string when they are equal.
func DocumentDiff(before, after []byte, useColor bool) (string, error) {
	if len(bytes.TrimSpace(before)) == 0 && len(bytes.TrimSpace(after)) == 0 {
		return "", nil
	}

	from, err := loadInput("before", before)
	if err != nil {
		return "", fmt.Errorf("parsing original document: %w", err)
	}

	to, err := loadInput("after", after)
	if err != nil {
		return "", fmt.Errorf("parsing updated document: %w", err)
	}

	report, err := dyff.CompareInputFiles(from, to)
	if err != nil {
		return "", fmt.Errorf("comparing documents: %w", err)
	}

	if len(report.Diffs) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	writer := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}
	if err := writer.WriteReport(&buf); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

func loadInput(name string, data []byte) (ytbx.InputFile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ytbx.InputFile{Location: name}, nil
	}

	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}

	return ytbx.InputFile{
		Location:  name,
		Documents: docs,
	}, nil
}
