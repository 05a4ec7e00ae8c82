package dispatch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Command names understood by the dispatcher.
const (
	CmdSearch = "search"
	CmdDiff   = "diff"
	CmdMode   = "mode"
)

// arity is the number of arguments each command takes.
var arity = map[string]int{
	CmdSearch: 1,
	CmdDiff:   2,
	CmdMode:   1,
}

// Command is one script entry.
type Command struct {
	Name string   `yaml:"command" json:"command"`
	Args []string `yaml:"args" json:"args"`

	// Line is the 1-based source line, 0 when unknown.
	Line int `yaml:"-" json:"-"`
}

// Script is the YAML form of a command list.
type Script struct {
	Commands []Command `yaml:"commands"`
}

// ParseScript reads tab-separated commands from r, one per line:
// the command name followed by its arguments. Blank lines are skipped.
func ParseScript(r io.Reader) ([]Command, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16<<20)

	cmds := []Command{}
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		cmds = append(cmds, Command{
			Name: fields[0],
			Args: fields[1:],
			Line: ln,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read commands at line %d: %w", ln+1, err)
	}
	return cmds, nil
}

// LoadScriptYAML decodes a YAML script from r.
func LoadScriptYAML(r io.Reader) ([]Command, error) {
	var script Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&script); err != nil {
		if err == io.EOF {
			return []Command{}, nil
		}
		return nil, fmt.Errorf("parse YAML script: %w", err)
	}
	for i := range script.Commands {
		if script.Commands[i].Args == nil {
			script.Commands[i].Args = []string{}
		}
	}
	if script.Commands == nil {
		script.Commands = []Command{}
	}
	return script.Commands, nil
}

// LoadScriptFile reads the script at path. Files ending in .yaml or .yml
// are parsed as YAML, anything else as tab-separated text.
func LoadScriptFile(path string) ([]Command, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer fh.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadScriptYAML(fh)
	default:
		return ParseScript(fh)
	}
}
