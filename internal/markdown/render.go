package markdown

import (
	"fmt"

	"showboat/internal/chunk"
)

// defaultTitle is used when an init chunk carries no title.
const defaultTitle = "Untitled"

// Render computes the display markdown for a chunk's command and fields.
// The second return is false for commands that carry no displayable
// markdown (pop) and for unknown commands.
func Render(command chunk.Command, fields chunk.Fields) (string, bool) {
	switch command {
	case chunk.CommandInit:
		title := fields.Title
		if title == "" {
			title = defaultTitle
		}
		return "# " + title, true
	case chunk.CommandNote:
		return fields.Markdown, true
	case chunk.CommandExec:
		return renderExec(fields), true
	case chunk.CommandImage:
		return renderImage(fields), true
	default:
		return "", false
	}
}

// RenderChunk is a convenience wrapper over Render for stored chunks.
func RenderChunk(c *chunk.Chunk) (string, bool) {
	if c == nil {
		return "", false
	}
	return Render(c.Command, c.Fields)
}

func renderExec(fields chunk.Fields) string {
	codeFence := Fence(fields.Input)
	outputFence := Fence(fields.Output)
	return fmt.Sprintf(
		"%s%s\n%s\n%s\n\n%soutput\n%s\n%s",
		codeFence, fields.Language, fields.Input, codeFence,
		outputFence, fields.Output, outputFence,
	)
}

func renderImage(fields chunk.Fields) string {
	fence := Fence(fields.Filename)
	rendered := fmt.Sprintf("%sbash {image}\n%s\n%s", fence, fields.Filename, fence)
	if fields.Alt != "" {
		// Empty URL on purpose: the binary payload travels out of band and
		// the consumer splices it into this placeholder.
		rendered += fmt.Sprintf("\n\n![%s]()", fields.Alt)
	}
	return rendered
}
