package workflow

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/alttext/internal/domain"
	"github.com/renato0307/alttext/internal/feedback"
	portsmocks "github.com/renato0307/alttext/internal/ports/mocks"
)

type fixture struct {
	clipboard *portsmocks.MockClipboard
	generator *portsmocks.MockGenerator
	workflow  *Workflow
}

func newFixture(t *testing.T, policy StalePolicy) *fixture {
	t.Helper()
	f := &fixture{
		clipboard: portsmocks.NewMockClipboard(t),
		generator: portsmocks.NewMockGenerator(t),
	}
	f.workflow = New(Config{
		Clipboard:      f.clipboard,
		FeedbackWindow: 10 * time.Millisecond,
		Generator:      f.generator,
		StalePolicy:    policy,
	})
	return f
}

func imageFile(name string) domain.File {
	return domain.File{Data: []byte("not really a png: " + name), MIME: "image/png", Name: name}
}

func run(t *testing.T, w *Workflow, cmd tea.Cmd) {
	t.Helper()
	require.NoError(t, Run(context.Background(), w, cmd))
}

func TestLoadImage_RejectsNonImages(t *testing.T) {
	files := []domain.File{
		{Data: []byte("hello"), MIME: "text/plain", Name: "notes.txt"},
		{Data: []byte("%PDF"), MIME: "application/pdf", Name: "doc.pdf"},
		{Data: []byte("?"), MIME: "", Name: "unknown"},
	}

	for _, file := range files {
		t.Run(file.Name, func(t *testing.T) {
			f := newFixture(t, StaleLastWriteWins)
			require.True(t, f.workflow.LoadImage(imageFile("cat.png")))
			f.workflow.EditDescription("kept")
			f.workflow.SetTags([]string{"kept"})
			before := f.workflow.Session()
			revision := f.workflow.TagsRevision()

			assert.False(t, f.workflow.LoadImage(file))
			assert.Equal(t, before, f.workflow.Session())
			assert.Equal(t, revision, f.workflow.TagsRevision())
		})
	}
}

func TestLoadImage_ClearsResults(t *testing.T) {
	f := newFixture(t, StaleLastWriteWins)
	require.True(t, f.workflow.LoadImage(imageFile("first.png")))
	f.workflow.EditDescription("A dog")
	f.workflow.SetTags([]string{"dog"})

	require.True(t, f.workflow.LoadImage(imageFile("second.png")))

	s := f.workflow.Session()
	require.NotNil(t, s.Image)
	assert.Equal(t, "second.png", s.Image.Name)
	assert.Contains(t, s.Image.DataURI, "data:image/png;base64,")
	assert.Empty(t, s.Description)
	assert.Empty(t, s.Tags)
}

func TestGenerate_NoImageIsNoop(t *testing.T) {
	f := newFixture(t, StaleLastWriteWins)

	cmd := f.workflow.Generate()

	assert.Nil(t, cmd)
	assert.Equal(t, domain.Session{Tags: []string{}}, f.workflow.Session())
	f.generator.AssertNotCalled(t, "DescribeImage", mock.Anything, mock.Anything)
}

func TestGenerate_HappyPath(t *testing.T) {
	f := newFixture(t, StaleLastWriteWins)
	require.True(t, f.workflow.LoadImage(imageFile("cat.png")))
	img := f.workflow.Session().Image

	f.generator.EXPECT().DescribeImage(mock.Anything, img).
		RunAndReturn(func(context.Context, *domain.Image) (string, error) {
			assert.Equal(t, domain.PhaseDescribingImage, f.workflow.Phase())
			return "A cat on a mat", nil
		})
	f.generator.EXPECT().TagsFromDescription(mock.Anything, "A cat on a mat").
		RunAndReturn(func(context.Context, string) ([]string, error) {
			assert.Equal(t, domain.PhaseTaggingDescription, f.workflow.Phase())
			assert.True(t, f.workflow.Session().BusyDescription)
			return []string{"cat", "mat", "pet"}, nil
		})

	run(t, f.workflow, f.workflow.Generate())

	s := f.workflow.Session()
	assert.Equal(t, "A cat on a mat", s.Description)
	assert.Equal(t, []string{"cat", "mat", "pet"}, s.Tags)
	assert.False(t, s.BusyDescription)
	assert.False(t, s.BusyTags)
	assert.Equal(t, domain.PhaseIdle, f.workflow.Phase())
}

func TestGenerate_Paths(t *testing.T) {
	tests := []struct {
		name            string
		description     string
		descriptionErr  error
		callsTags       bool
		tags            []string
		tagsErr         error
		wantDescription string
		wantTags        []string
	}{
		{
			name:            "duplicate tags are removed",
			description:     "A cat",
			callsTags:       true,
			tags:            []string{"cat", "cat", "Cat"},
			wantDescription: "A cat",
			wantTags:        []string{"cat", "Cat"},
		},
		{
			name:            "nil tag result falls back to general",
			description:     "A cat",
			callsTags:       true,
			tags:            nil,
			wantDescription: "A cat",
			wantTags:        []string{"general"},
		},
		{
			name:            "empty tag result falls back to general",
			description:     "A cat",
			callsTags:       true,
			tags:            []string{},
			wantDescription: "A cat",
			wantTags:        []string{"general"},
		},
		{
			name:            "blank tags fall back to general",
			description:     "A cat",
			callsTags:       true,
			tags:            []string{"", "  "},
			wantDescription: "A cat",
			wantTags:        []string{"general"},
		},
		{
			name:            "tags are trimmed and capped",
			description:     "A cat",
			callsTags:       true,
			tags:            []string{" cat", "cat", "a", "b", "c", "d", "e", "f", "g", "h"},
			wantDescription: "A cat",
			wantTags:        []string{"cat", "a", "b", "c", "d", "e", "f", "g"},
		},
		{
			name:            "tag failure keeps description",
			description:     "A cat",
			callsTags:       true,
			tagsErr:         &domain.GenerationError{Stage: domain.StageTags, Err: context.DeadlineExceeded},
			wantDescription: "A cat",
			wantTags:        []string{},
		},
		{
			name:            "unavailable sentinel skips tags",
			description:     domain.DescriptionUnavailable,
			wantDescription: domain.DescriptionUnavailable,
			wantTags:        []string{},
		},
		{
			name:            "failed sentinel skips tags",
			description:     domain.DescriptionFailed,
			wantDescription: domain.DescriptionFailed,
			wantTags:        []string{},
		},
		{
			name:            "description failure",
			descriptionErr:  &domain.GenerationError{Stage: domain.StageDescription, Err: context.Canceled},
			wantDescription: domain.DescriptionError,
			wantTags:        []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, StaleLastWriteWins)
			require.True(t, f.workflow.LoadImage(imageFile("cat.png")))

			f.generator.EXPECT().DescribeImage(mock.Anything, mock.Anything).
				Return(tt.description, tt.descriptionErr)
			if tt.callsTags {
				f.generator.EXPECT().TagsFromDescription(mock.Anything, tt.description).
					Return(tt.tags, tt.tagsErr)
			}

			run(t, f.workflow, f.workflow.Generate())

			s := f.workflow.Session()
			assert.Equal(t, tt.wantDescription, s.Description)
			assert.Equal(t, tt.wantTags, s.Tags)
			assert.False(t, s.BusyDescription, "busy description must be cleared on every path")
			assert.False(t, s.BusyTags)
		})
	}
}

func TestGenerate_DescriptionFailureClearsPreviousTags(t *testing.T) {
	f := newFixture(t, StaleLastWriteWins)
	require.True(t, f.workflow.LoadImage(imageFile("cat.png")))
	f.workflow.SetTags([]string{"old"})

	f.generator.EXPECT().DescribeImage(mock.Anything, mock.Anything).
		Return("", errors.New("boom"))

	run(t, f.workflow, f.workflow.Generate())

	assert.Equal(t, []string{}, f.workflow.Session().Tags)
}

func TestGenerate_BusyGuard(t *testing.T) {
	f := newFixture(t, StaleLastWriteWins)
	require.True(t, f.workflow.LoadImage(imageFile("cat.png")))

	first := f.workflow.Generate()
	require.NotNil(t, first)
	assert.True(t, f.workflow.Session().BusyDescription)
	assert.False(t, f.workflow.CanGenerate())

	assert.Nil(t, f.workflow.Generate())
}

func TestGenerate_ClearsDescriptionCopied(t *testing.T) {
	f := newFixture(t, StaleLastWriteWins)
	require.True(t, f.workflow.LoadImage(imageFile("cat.png")))
	f.workflow.EditDescription("A cat")
	f.clipboard.EXPECT().WriteText("A cat").Return(nil)

	copyCmd := f.workflow.CopyDescription()
	require.True(t, f.workflow.Session().DescriptionCopied)

	require.NotNil(t, f.workflow.Generate())
	assert.False(t, f.workflow.Session().DescriptionCopied)

	// the old feedback timer no longer applies
	f.workflow.Update(copyCmd())
	assert.False(t, f.workflow.Session().DescriptionCopied)
}

func TestGenerate_UsesRequestTimeout(t *testing.T) {
	f := newFixture(t, StaleLastWriteWins)
	f.workflow.requestTimeout = time.Minute
	require.True(t, f.workflow.LoadImage(imageFile("cat.png")))

	f.generator.EXPECT().DescribeImage(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *domain.Image) (string, error) {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
			return domain.DescriptionUnavailable, nil
		})

	run(t, f.workflow, f.workflow.Generate())
}

func TestReset(t *testing.T) {
	f := newFixture(t, StaleLastWriteWins)
	require.True(t, f.workflow.LoadImage(imageFile("cat.png")))
	f.workflow.EditDescription("A cat")
	f.workflow.SetTags([]string{"cat"})
	require.NotNil(t, f.workflow.Generate())

	f.workflow.Reset()

	assert.Equal(t, domain.Session{Tags: []string{}}, f.workflow.Session())
	assert.Equal(t, domain.PhaseIdle, f.workflow.Phase())
}

func TestStaleResult_LastWriteWins(t *testing.T) {
	f := newFixture(t, StaleLastWriteWins)
	require.True(t, f.workflow.LoadImage(imageFile("first.png")))

	f.generator.EXPECT().DescribeImage(mock.Anything, mock.Anything).Return("A dog", nil)
	f.generator.EXPECT().TagsFromDescription(mock.Anything, "A dog").Return([]string{"dog"}, nil)

	inFlight := f.workflow.Generate()
	require.True(t, f.workflow.LoadImage(imageFile("second.png")))
	assert.True(t, f.workflow.Session().BusyDescription, "loading does not cancel the in-flight call")

	// The late result lands on the new image's state
	run(t, f.workflow, inFlight)

	s := f.workflow.Session()
	assert.Equal(t, "second.png", s.Image.Name)
	assert.Equal(t, "A dog", s.Description)
	assert.Equal(t, []string{"dog"}, s.Tags)
	assert.False(t, s.BusyDescription)
}

func TestStaleResult_LastWriteWinsOverwritesManualTags(t *testing.T) {
	f := newFixture(t, StaleLastWriteWins)
	require.True(t, f.workflow.LoadImage(imageFile("cat.png")))

	f.generator.EXPECT().DescribeImage(mock.Anything, mock.Anything).Return("A cat", nil)
	f.generator.EXPECT().TagsFromDescription(mock.Anything, "A cat").Return([]string{"cat"}, nil)

	tagsCmd := f.workflow.Update(f.workflow.Generate()())
	require.NotNil(t, tagsCmd)
	f.workflow.SetTags([]string{"manual"})

	f.workflow.Update(tagsCmd())

	assert.Equal(t, []string{"cat"}, f.workflow.Session().Tags)
}

func TestStaleResult_Discard(t *testing.T) {
	f := newFixture(t, StaleDiscard)
	require.True(t, f.workflow.LoadImage(imageFile("first.png")))

	f.generator.EXPECT().DescribeImage(mock.Anything, mock.Anything).Return("A dog", nil).Once()

	inFlight := f.workflow.Generate()
	require.True(t, f.workflow.LoadImage(imageFile("second.png")))
	assert.False(t, f.workflow.Session().BusyDescription, "discard abandons the in-flight cycle")

	run(t, f.workflow, inFlight)

	s := f.workflow.Session()
	assert.Equal(t, "second.png", s.Image.Name)
	assert.Empty(t, s.Description)
	assert.Empty(t, s.Tags)
	f.generator.AssertNotCalled(t, "TagsFromDescription", mock.Anything, mock.Anything)
}

func TestStaleResult_DiscardAfterReset(t *testing.T) {
	f := newFixture(t, StaleDiscard)
	require.True(t, f.workflow.LoadImage(imageFile("cat.png")))

	f.generator.EXPECT().DescribeImage(mock.Anything, mock.Anything).Return("A cat", nil)
	f.generator.EXPECT().TagsFromDescription(mock.Anything, "A cat").Return([]string{"cat"}, nil)

	tagsCmd := f.workflow.Update(f.workflow.Generate()())
	require.NotNil(t, tagsCmd)
	f.workflow.Reset()

	f.workflow.Update(tagsCmd())

	assert.Equal(t, domain.Session{Tags: []string{}}, f.workflow.Session())
}

func TestCopy_EmptyContentIsNoop(t *testing.T) {
	f := newFixture(t, StaleLastWriteWins)

	assert.Nil(t, f.workflow.CopyDescription())
	assert.Nil(t, f.workflow.CopyTags())
	assert.False(t, f.workflow.Session().DescriptionCopied)
	assert.False(t, f.workflow.Session().TagsCopied)
	f.clipboard.AssertNotCalled(t, "WriteText", mock.Anything)
}

func TestCopyTags_JoinsWithComma(t *testing.T) {
	f := newFixture(t, StaleLastWriteWins)
	f.workflow.SetTags([]string{"cat", "mat", "pet"})
	f.clipboard.EXPECT().WriteText("cat, mat, pet").Return(nil)

	cmd := f.workflow.CopyTags()

	require.NotNil(t, cmd)
	assert.True(t, f.workflow.Session().TagsCopied)
	assert.False(t, f.workflow.Session().DescriptionCopied)
}

func TestCopy_FailureRevertsFlag(t *testing.T) {
	clipErr := errors.New("clipboard unavailable")

	t.Run("description", func(t *testing.T) {
		f := newFixture(t, StaleLastWriteWins)
		f.workflow.EditDescription("A cat")
		f.clipboard.EXPECT().WriteText("A cat").Return(clipErr)

		cmd := f.workflow.CopyDescription()

		assert.False(t, f.workflow.Session().DescriptionCopied)
		require.NotNil(t, cmd)
		assert.Equal(t, CopyFailedMsg{Err: clipErr, Target: CopyTargetDescription}, cmd())
	})

	t.Run("tags", func(t *testing.T) {
		f := newFixture(t, StaleLastWriteWins)
		f.workflow.SetTags([]string{"cat"})
		f.clipboard.EXPECT().WriteText("cat").Return(clipErr)

		cmd := f.workflow.CopyTags()

		assert.False(t, f.workflow.Session().TagsCopied)
		require.NotNil(t, cmd)
		assert.Equal(t, CopyFailedMsg{Err: clipErr, Target: CopyTargetTags}, cmd())
	})
}

func TestCopy_IndependentTimers(t *testing.T) {
	f := newFixture(t, StaleLastWriteWins)
	f.workflow.EditDescription("A cat")
	f.workflow.SetTags([]string{"cat"})
	f.clipboard.EXPECT().WriteText(mock.Anything).Return(nil)

	descCmd := f.workflow.CopyDescription()
	tagsCmd := f.workflow.CopyTags()

	f.workflow.Update(descCmd())
	s := f.workflow.Session()
	assert.False(t, s.DescriptionCopied)
	assert.True(t, s.TagsCopied, "each flag reverts on its own timer")

	f.workflow.Update(tagsCmd())
	assert.False(t, f.workflow.Session().TagsCopied)
}

func TestCopy_RearmRestartsWindow(t *testing.T) {
	f := newFixture(t, StaleLastWriteWins)
	f.workflow.SetTags([]string{"cat"})
	f.clipboard.EXPECT().WriteText("cat").Return(nil).Twice()

	first := f.workflow.CopyTags()
	second := f.workflow.CopyTags()

	f.workflow.Update(first())
	assert.True(t, f.workflow.Session().TagsCopied, "superseded timer must not fire")

	f.workflow.Update(second())
	assert.False(t, f.workflow.Session().TagsCopied)
}

func TestCanEditDescription(t *testing.T) {
	f := newFixture(t, StaleLastWriteWins)
	require.True(t, f.workflow.LoadImage(imageFile("cat.png")))
	assert.True(t, f.workflow.CanEditDescription())

	require.NotNil(t, f.workflow.Generate())
	assert.False(t, f.workflow.CanEditDescription())

	f.workflow.Reset()
	f.workflow.EditDescription("A cat")
	f.clipboard.EXPECT().WriteText("A cat").Return(nil)
	require.NotNil(t, f.workflow.CopyDescription())
	assert.False(t, f.workflow.CanEditDescription())
}

func TestSetTags_EnforcesUniqueness(t *testing.T) {
	f := newFixture(t, StaleLastWriteWins)
	revision := f.workflow.TagsRevision()

	f.workflow.SetTags([]string{"cat", "", "cat", "mat"})

	assert.Equal(t, []string{"cat", "mat"}, f.workflow.Session().Tags)
	assert.Equal(t, revision, f.workflow.TagsRevision(), "user edits do not bump the revision")
}

func TestTagsRevision(t *testing.T) {
	f := newFixture(t, StaleLastWriteWins)
	r0 := f.workflow.TagsRevision()

	require.True(t, f.workflow.LoadImage(imageFile("cat.png")))
	r1 := f.workflow.TagsRevision()
	assert.Greater(t, r1, r0)

	f.generator.EXPECT().DescribeImage(mock.Anything, mock.Anything).Return("A cat", nil)
	tagsCmd := f.workflow.Update(f.workflow.Generate()())
	require.NotNil(t, tagsCmd)
	r2 := f.workflow.TagsRevision()
	assert.Greater(t, r2, r1, "tag generation start invalidates edits")

	f.workflow.Reset()
	assert.Greater(t, f.workflow.TagsRevision(), r2)
}

func TestUpdate_IgnoresForeignMessages(t *testing.T) {
	f := newFixture(t, StaleLastWriteWins)

	assert.Nil(t, f.workflow.Update(tea.KeyMsg{}))
	assert.Nil(t, f.workflow.Update(feedback.FiredMsg{ID: 1 << 60, Seq: 1}))
}

func TestParseStalePolicy(t *testing.T) {
	tests := []struct {
		input    string
		expected StalePolicy
		wantErr  bool
	}{
		{"", StaleLastWriteWins, false},
		{"last-write-wins", StaleLastWriteWins, false},
		{"discard", StaleDiscard, false},
		{"ignore", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			policy, err := ParseStalePolicy(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, policy)
		})
	}
}

func TestEndToEnd_CopyFlagRevertsAfterWindow(t *testing.T) {
	f := newFixture(t, StaleLastWriteWins)
	require.True(t, f.workflow.LoadImage(imageFile("x.png")))

	f.generator.EXPECT().DescribeImage(mock.Anything, mock.Anything).Return("A cat on a mat", nil)
	f.generator.EXPECT().TagsFromDescription(mock.Anything, "A cat on a mat").
		Return([]string{"cat", "mat", "pet"}, nil)
	f.clipboard.EXPECT().WriteText("cat, mat, pet").Return(nil)

	run(t, f.workflow, f.workflow.Generate())
	require.Equal(t, []string{"cat", "mat", "pet"}, f.workflow.Session().Tags)

	cmd := f.workflow.CopyTags()
	assert.True(t, f.workflow.Session().TagsCopied)

	start := time.Now()
	run(t, f.workflow, cmd)

	assert.False(t, f.workflow.Session().TagsCopied)
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestRun_FlattensBatches(t *testing.T) {
	f := newFixture(t, StaleLastWriteWins)
	f.workflow.EditDescription("A cat")
	f.workflow.SetTags([]string{"cat"})
	f.clipboard.EXPECT().WriteText(mock.Anything).Return(nil)

	run(t, f.workflow, tea.Batch(f.workflow.CopyDescription(), f.workflow.CopyTags()))

	s := f.workflow.Session()
	assert.False(t, s.DescriptionCopied)
	assert.False(t, s.TagsCopied)
}

func TestRun_StopsOnCancelledContext(t *testing.T) {
	f := newFixture(t, StaleLastWriteWins)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, f.workflow, func() tea.Msg { return nil })

	assert.ErrorIs(t, err, context.Canceled)
}
