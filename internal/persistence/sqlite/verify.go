// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
)

// Verification modes accepted by VerifyIntegrity.
const (
	VerifyQuick = "quick" // PRAGMA quick_check
	VerifyFull  = "full"  // PRAGMA integrity_check
)

// VerifyIntegrity opens path read-only and runs SQLite's structural checks.
// A healthy database yields (nil, nil); otherwise the returned slice holds
// the diagnostic rows. Unknown modes fall back to the quick check.
func VerifyIntegrity(path string, mode string) ([]string, error) {
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=ro&_pragma=busy_timeout(2000)", path))
	if err != nil {
		return nil, fmt.Errorf("open %s for verification: %w", path, err)
	}
	defer func() { _ = db.Close() }()

	check := "quick_check"
	if mode == VerifyFull {
		check = "integrity_check"
	}
	rows, err := db.Query("PRAGMA " + check)
	if err != nil {
		return nil, fmt.Errorf("pragma %s: %w", check, err)
	}
	defer func() { _ = rows.Close() }()

	var diag []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", check, err)
		}
		diag = append(diag, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read %s rows: %w", check, err)
	}

	switch {
	case len(diag) == 0:
		return []string{check + " returned no rows"}, nil
	case len(diag) == 1 && strings.EqualFold(diag[0], "ok"):
		return nil, nil
	default:
		return diag, nil
	}
}
