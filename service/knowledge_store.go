package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"github.com/nextute/chatbot-be/types"
)

const rebuildFetchTimeout = 10 * time.Second

// InstituteLister supplies the live records the knowledge base is built from.
type InstituteLister interface {
	List(ctx context.Context) ([]types.Institute, error)
}

// staticEntries is the editorial half of the knowledge base: fixed text about
// the platform itself, appended after the per-institute entries on every
// rebuild.
var staticEntries = []types.KnowledgeEntry{
	{
		Type:     "about",
		Content:  "Nextute is an education platform that helps students discover, compare and join coaching institutes across India. Students can browse institute profiles with courses, fees, ratings and reviews, all in one place.",
		Metadata: types.KnowledgeMetadata{Category: "platform", Priority: types.PriorityHigh},
	},
	{
		Type:     "services",
		Content:  "Nextute offers institute discovery, side-by-side comparison, verified student reviews, mentorship programs with experienced mentors, and direct registration with institutes through the platform.",
		Metadata: types.KnowledgeMetadata{Category: "platform", Priority: types.PriorityMedium},
	},
	{
		Type:     "mentorship",
		Content:  "Nextute offers mentorship plans at ₹1,000 and ₹1,499. The ₹1,000 plan includes monthly one-on-one sessions with a mentor; the ₹1,499 plan adds weekly progress tracking and study-plan reviews.",
		Metadata: types.KnowledgeMetadata{Category: "pricing", Priority: types.PriorityHigh},
	},
	{
		Type:     "registration",
		Content:  "To register on Nextute, sign up with your email or phone number, verify the OTP, and complete your student profile. Institutes register through the institute portal and are verified by our team before listing.",
		Metadata: types.KnowledgeMetadata{Category: "onboarding", Priority: types.PriorityMedium},
	},
	{
		Type:     "search",
		Content:  "Use the search bar to find institutes by name, city or course. Filters let you narrow results by fee range, rating, and courses offered such as JEE, NEET or foundation programs.",
		Metadata: types.KnowledgeMetadata{Category: "help", Priority: types.PriorityMedium},
	},
	{
		Type:     "comparison",
		Content:  "The compare feature lets you place up to three institutes side by side to review their courses, fees, ratings, facilities and locations before deciding.",
		Metadata: types.KnowledgeMetadata{Category: "help", Priority: types.PriorityMedium},
	},
	{
		Type:     "reviews",
		Content:  "Reviews on Nextute are written by verified students of each institute. Ratings are out of 5 and institutes cannot edit or remove student reviews.",
		Metadata: types.KnowledgeMetadata{Category: "policy", Priority: types.PriorityLow},
	},
	{
		Type:     "contact",
		Content:  "You can reach the Nextute team at support@nextute.com or through the contact form on the website. Our support hours are 9am to 7pm IST, Monday to Saturday.",
		Metadata: types.KnowledgeMetadata{Category: "contact", Priority: types.PriorityMedium},
	},
}

type knowledgeSnapshot struct {
	entries    []types.KnowledgeEntry
	generation uint64
}

// KnowledgeStore holds the in-memory knowledge base. The entry list is
// replaced wholesale by Rebuild via a single pointer swap, so concurrent
// readers always see either the previous snapshot or the new one, never a
// partially built list.
type KnowledgeStore struct {
	institutes InstituteLister
	snapshot   atomic.Pointer[knowledgeSnapshot]
	generation atomic.Uint64
}

func NewKnowledgeStore(institutes InstituteLister) *KnowledgeStore {
	return &KnowledgeStore{
		institutes: institutes,
	}
}

// Rebuild fetches the current institutes, formats one entry per institute,
// appends the static editorial entries and swaps the snapshot in. On fetch
// failure the previous snapshot stays in place (last known good) and the
// error is returned for the administrative caller to act on.
func (s *KnowledgeStore) Rebuild(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, rebuildFetchTimeout)
	defer cancel()

	institutes, err := s.institutes.List(ctx)
	if err != nil {
		log.Println("knowledge rebuild failed, keeping previous snapshot:", err)
		return 0, fmt.Errorf("fetching institutes: %w", err)
	}

	entries := make([]types.KnowledgeEntry, 0, len(institutes)+len(staticEntries))
	for _, institute := range institutes {
		entries = append(entries, instituteEntry(institute))
	}
	entries = append(entries, staticEntries...)

	s.snapshot.Store(&knowledgeSnapshot{
		entries:    entries,
		generation: s.generation.Add(1),
	})
	log.Printf("knowledge base rebuilt: %d entries (%d institutes)", len(entries), len(institutes))
	return len(entries), nil
}

// All returns the current entry list. Callers must not mutate it.
func (s *KnowledgeStore) All() []types.KnowledgeEntry {
	entries, _ := s.Snapshot()
	return entries
}

// Snapshot returns the current entries together with the snapshot generation,
// which the embedding index uses to invalidate its cache.
func (s *KnowledgeStore) Snapshot() ([]types.KnowledgeEntry, uint64) {
	snap := s.snapshot.Load()
	if snap == nil {
		return nil, 0
	}
	return snap.entries, snap.generation
}

func instituteEntry(institute types.Institute) types.KnowledgeEntry {
	var b strings.Builder
	fmt.Fprintf(&b, "%s is a coaching institute located at %s, %s.", institute.Name, institute.Address, institute.City)
	if len(institute.Courses) > 0 {
		fmt.Fprintf(&b, " Courses offered: %s.", strings.Join(institute.Courses, ", "))
	}
	if institute.Fee != "" {
		fmt.Fprintf(&b, " Fee: %s.", institute.Fee)
	}
	if institute.Rating > 0 {
		fmt.Fprintf(&b, " Rated %.1f out of 5 by students.", institute.Rating)
	}
	return types.KnowledgeEntry{
		Type:    "institute",
		Content: b.String(),
		Metadata: types.KnowledgeMetadata{
			Category: "institutes",
			Priority: types.PriorityHigh,
		},
	}
}
