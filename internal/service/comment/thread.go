package comment

import (
	"sort"

	"github.com/google/uuid"

	"yorum-servisi/internal/domain"
)

// AssembleThread partitions a flat record set for one article into
// top-level comments and replies, sorts both newest-first and, when
// includeReplies is set, nests each reply under its top-level ancestor.
// Replies to replies are flattened under the nearest top-level ancestor
// resolvable within the record set; a reply whose ancestor chain leaves
// the set is dropped from the nested output.
func AssembleThread(records []domain.Comment, includeReplies bool) []domain.Comment {
	topLevel := make([]domain.Comment, 0, len(records))
	var replies []domain.Comment

	for _, c := range records {
		c.Replies = nil
		if c.ParentID == nil {
			topLevel = append(topLevel, c)
		} else {
			replies = append(replies, c)
		}
	}

	sortNewestFirst(topLevel)

	if !includeReplies {
		return topLevel
	}

	sortNewestFirst(replies)

	parentOf := make(map[uuid.UUID]*uuid.UUID, len(records))
	for _, c := range records {
		parentOf[c.ID] = c.ParentID
	}
	position := make(map[uuid.UUID]int, len(topLevel))
	for i, c := range topLevel {
		position[c.ID] = i
	}

	for _, r := range replies {
		if idx, ok := resolveAncestor(*r.ParentID, parentOf, position); ok {
			topLevel[idx].Replies = append(topLevel[idx].Replies, r)
		}
	}

	return topLevel
}

func sortNewestFirst(comments []domain.Comment) {
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
}

// resolveAncestor walks the parent chain until it reaches a top-level
// comment. The visited set guards against malformed parent cycles.
func resolveAncestor(parentID uuid.UUID, parentOf map[uuid.UUID]*uuid.UUID, position map[uuid.UUID]int) (int, bool) {
	visited := make(map[uuid.UUID]bool)
	id := parentID

	for {
		if idx, ok := position[id]; ok {
			return idx, true
		}
		next, ok := parentOf[id]
		if !ok || next == nil || visited[id] {
			return 0, false
		}
		visited[id] = true
		id = *next
	}
}
