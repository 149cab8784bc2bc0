package catalog

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Credentials are the IGDB/Twitch client-credentials pair, read from a local
// key-value file (one KEY=value per line, # comments allowed).
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// LoadCredentials parses the credentials file. The two required keys are CLI
// (client id) and SECRET (client secret); a missing file or missing key is a
// startup error.
func LoadCredentials(path string) (Credentials, error) {
	f, err := os.Open(path)
	if err != nil {
		return Credentials{}, fmt.Errorf("catalog credentials file %s: %w", path, err)
	}
	defer f.Close()

	values := map[string]string{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		values[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return Credentials{}, fmt.Errorf("reading %s: %w", path, err)
	}

	creds := Credentials{
		ClientID:     values["CLI"],
		ClientSecret: values["SECRET"],
	}
	if creds.ClientID == "" || creds.ClientSecret == "" {
		return Credentials{}, fmt.Errorf("%s is missing CLI or SECRET", path)
	}
	return creds, nil
}
