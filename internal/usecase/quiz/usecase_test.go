package quiz

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/futig/edututor/internal/entity"
	"github.com/futig/edututor/internal/pkg/pdftext"
	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) Generate(ctx context.Context, prompt string) string {
	args := m.Called(ctx, prompt)
	return args.String(0)
}

type stubExtractor struct {
	text string
	err  error
}

func (s stubExtractor) ExtractText(io.ReaderAt, int64) (string, error) {
	return s.text, s.err
}

// wordTruncator counts whitespace-separated words as tokens.
type wordTruncator struct{}

func (wordTruncator) Truncate(text string, maxTokens int) string {
	words := strings.Fields(text)
	if len(words) <= maxTokens {
		return text
	}
	return strings.Join(words[:maxTokens], " ")
}

type mockHistory struct {
	mock.Mock
}

func (m *mockHistory) Record(ctx context.Context, record entity.HistoryRecord) error {
	return m.Called(ctx, record).Error(0)
}

func TestPrompt(t *testing.T) {
	expected := "\nMake 5 MCQs from this content:\n\ncells divide\n\nFormat:\nQn: <question>\n" +
		"A. <option A>\nB. <option B>\nC. <option C>\nD. <option D>\nCorrect Answer: <letter>\n"

	assert.Equal(t, expected, Prompt("cells divide"))
}

func TestFromPDF(t *testing.T) {
	tests := []struct {
		name         string
		extractor    stubExtractor
		file         io.ReaderAt
		modelOutput  string
		expected     string
		expectPrompt string
	}{
		{
			name:         "passes model output through unvalidated",
			extractor:    stubExtractor{text: "Mitochondria make energy"},
			file:         strings.NewReader("x"),
			modelOutput:  "not really an MCQ",
			expected:     "not really an MCQ",
			expectPrompt: Prompt("Mitochondria make energy"),
		},
		{
			name:      "no text skips the model",
			extractor: stubExtractor{text: ""},
			file:      strings.NewReader("x"),
			expected:  "❌ No text found in PDF.",
		},
		{
			name:      "extraction error",
			extractor: stubExtractor{err: errors.New("open pdf: malformed PDF: header not found")},
			file:      strings.NewReader("x"),
			expected:  "❌ PDF error: open pdf: malformed PDF: header not found",
		},
		{
			name:      "missing file",
			extractor: stubExtractor{text: "unused"},
			file:      nil,
			expected:  "❌ PDF error: invalid file: no file provided",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := new(mockGenerator)
			if tt.expectPrompt != "" {
				gen.On("Generate", mock.Anything, tt.expectPrompt).Return(tt.modelOutput).Once()
			}

			out := NewQuizGenerator(gen, tt.extractor).FromPDF(context.Background(), tt.file, 1)

			assert.Equal(t, tt.expected, out)
			gen.AssertExpectations(t)
			if tt.expectPrompt == "" {
				gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestFromPDF_SourceBudget(t *testing.T) {
	gen := new(mockGenerator)
	gen.On("Generate", mock.Anything, Prompt("one two")).Return("Q1: ...").Once()

	q := NewQuizGenerator(gen, stubExtractor{text: "one two three four"}, WithSourceBudget(wordTruncator{}, 2))

	assert.Equal(t, "Q1: ...", q.FromPDF(context.Background(), strings.NewReader("x"), 1))
	gen.AssertExpectations(t)
}

func TestFromPDF_RecordsFailure(t *testing.T) {
	gen := new(mockGenerator)
	history := new(mockHistory)
	history.On("Record", mock.Anything, mock.MatchedBy(func(r entity.HistoryRecord) bool {
		return r.Kind == entity.RequestKindQuiz && r.Failed
	})).Return(nil).Once()

	q := NewQuizGenerator(gen, stubExtractor{}, WithHistory(history))
	q.FromPDF(context.Background(), strings.NewReader("x"), 1)

	history.AssertExpectations(t)
}

func TestFromPDF_RealDocument(t *testing.T) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetCompression(false)
	doc.SetFont("Helvetica", "", 12)
	doc.AddPage()
	doc.Cell(0, 10, "Photosynthesis")
	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))

	gen := new(mockGenerator)
	gen.On("Generate", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "Make 5 MCQs from this content:") &&
			strings.Contains(prompt, "Photosynthesis")
	})).Return("Q1: What do plants make?").Once()

	q := NewQuizGenerator(gen, pdftext.NewExtractor())
	out := q.FromPDF(context.Background(), bytes.NewReader(buf.Bytes()), int64(buf.Len()))

	assert.Equal(t, "Q1: What do plants make?", out)
	gen.AssertExpectations(t)
}

func TestFromPDF_BlankDocumentSkipsModel(t *testing.T) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	doc.Rect(10, 10, 40, 40, "D")
	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))

	gen := new(mockGenerator)
	q := NewQuizGenerator(gen, pdftext.NewExtractor())

	out := q.FromPDF(context.Background(), bytes.NewReader(buf.Bytes()), int64(buf.Len()))

	assert.Equal(t, "❌ No text found in PDF.", out)
	gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}
