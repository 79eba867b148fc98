package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonesrussell/webnode/internal/domain"
)

const (
	// appsRootName is the folder created under the documents folder to hold
	// all generated apps.
	appsRootName = "WebNode Apps"

	// appDirName is the subdirectory of the apps root that holds per-app folders.
	appDirName = "app"

	// dirPerm is the permission used for created directories.
	dirPerm = 0o755
)

// Paths holds the derived on-disk locations for one generated launcher.
// They are recomputed on each generation request, never persisted.
type Paths struct {
	// Folder is the per-app directory.
	Folder string
	// Script is the full path of the launcher script.
	Script string
	// Icon is the full path of the saved favicon.
	Icon string
}

// DocumentsFolder locates the user's documents folder. It prefers the
// standard "Documents" directory under the home directory; if that is
// missing it scans the home directory for subdirectories whose name
// case-insensitively contains "doc" and picks the shortest-named match.
// Returns ErrNoDocumentsFolder when every heuristic fails.
func DocumentsFolder() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrNoDocumentsFolder, err)
	}

	standard := filepath.Join(home, "Documents")
	if info, statErr := os.Stat(standard); statErr == nil && info.IsDir() {
		return standard, nil
	}

	return scanForDocumentsFolder(home)
}

// scanForDocumentsFolder looks through the home directory for the most
// likely documents folder. Best effort, not a guarantee.
func scanForDocumentsFolder(home string) (string, error) {
	entries, err := os.ReadDir(home)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrNoDocumentsFolder, err)
	}

	var candidates []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if strings.Contains(strings.ToLower(entry.Name()), "doc") {
			candidates = append(candidates, filepath.Join(home, entry.Name()))
		}
	}

	if len(candidates) == 0 {
		return "", domain.ErrNoDocumentsFolder
	}

	// Pick the shortest-named candidate as the most likely match.
	shortest := candidates[0]
	for _, c := range candidates[1:] {
		if len(c) < len(shortest) {
			shortest = c
		}
	}

	return shortest, nil
}

// AppsRoot locates the per-user apps root under the documents folder,
// creating it when missing. Idempotent.
func AppsRoot() (string, error) {
	docs, err := DocumentsFolder()
	if err != nil {
		return "", err
	}

	root := filepath.Join(docs, appsRootName)
	if mkErr := os.MkdirAll(root, dirPerm); mkErr != nil {
		return "", fmt.Errorf("failed to create apps root: %w", mkErr)
	}

	return root, nil
}

// DeriveAppFolder builds base/app/{Sanitize(company)}.{Sanitize(name)},
// creating all intermediate directories. Calling it repeatedly with the
// same inputs returns the same folder without error.
func DeriveAppFolder(base, company, name string) (string, error) {
	folder := filepath.Join(base, appDirName, folderName(company, name))
	if err := os.MkdirAll(folder, dirPerm); err != nil {
		return "", fmt.Errorf("failed to create app folder: %w", err)
	}

	return folder, nil
}

// DerivePaths derives the full set of artifact paths for an identity under
// the given base folder, creating the app folder. Distinct unsanitized
// inputs that sanitize to the same token map to the same paths and silently
// overwrite each other; that is documented behavior, not a defect.
func DerivePaths(base, company, name string) (Paths, error) {
	folder, err := DeriveAppFolder(base, company, name)
	if err != nil {
		return Paths{}, err
	}

	return Paths{
		Folder: folder,
		Script: filepath.Join(folder, ScriptFilename(company, name)),
		Icon:   filepath.Join(folder, IconFilename(company, name)),
	}, nil
}

// ScriptFilename returns webnode.{Sanitize(company)}.{Sanitize(name)}.py.
func ScriptFilename(company, name string) string {
	return "webnode." + folderName(company, name) + ".py"
}

// IconFilename returns webnode.{Sanitize(company)}.{Sanitize(name)}.ico.
func IconFilename(company, name string) string {
	return "webnode." + folderName(company, name) + ".ico"
}

// folderName is the {company}.{name} token shared by the app folder and
// both artifact filenames.
func folderName(company, name string) string {
	return Sanitize(company) + "." + Sanitize(name)
}
