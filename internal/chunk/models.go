package chunk

import (
	"strings"
	"time"
)

// Command identifies the authoring command a chunk was created from.
type Command string

const (
	CommandInit  Command = "init"
	CommandNote  Command = "note"
	CommandExec  Command = "exec"
	CommandImage Command = "image"
	CommandPop   Command = "pop"
)

var allCommands = []Command{
	CommandInit,
	CommandNote,
	CommandExec,
	CommandImage,
	CommandPop,
}

var commandSet = func() map[Command]struct{} {
	set := make(map[Command]struct{}, len(allCommands))
	for _, command := range allCommands {
		set[command] = struct{}{}
	}
	return set
}()

// AllCommands returns the ordered list of known commands.
func AllCommands() []Command {
	cp := make([]Command, len(allCommands))
	copy(cp, allCommands)
	return cp
}

// ParseCommand converts a string into a known Command.
func ParseCommand(value string) (Command, bool) {
	normalized := Command(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return "", false
	}
	_, ok := commandSet[normalized]
	return normalized, ok
}

// Fields holds the command-specific payload of a chunk. Only the fields
// relevant to the chunk's command are populated; the rest stay zero and are
// stored as NULL.
type Fields struct {
	Title    string // init
	Markdown string // note
	Language string // exec
	Input    string // exec
	Output   string // exec
	Filename string // image
	Alt      string // image
	Image    []byte // image
}

// Chunk is one immutable record representing a single received command.
type Chunk struct {
	ID         int64
	DocumentID string
	Command    Command
	CreatedAt  time.Time
	Fields
}

// HasImage reports whether the chunk carries a binary image payload.
func (c *Chunk) HasImage() bool {
	return c != nil && len(c.Image) > 0
}

// Summary aggregates per-document activity over content-bearing chunks.
type Summary struct {
	DocumentID string
	ChunkCount int
	FirstChunk time.Time
	LastChunk  time.Time
}

// DatabaseHealth captures diagnostic information about the chunk database.
type DatabaseHealth struct {
	DBPath           string
	DatabaseExists   bool
	DatabaseReadable bool
	TableExists      bool
	IntegrityCheck   bool
	TotalChunks      int
	DocumentCount    int
	Error            string
}
