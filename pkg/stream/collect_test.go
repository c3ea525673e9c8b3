package stream_test

import (
	"errors"
	"io"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/quarterbyte/chatstream/pkg/openai"
	"github.com/quarterbyte/chatstream/pkg/stream"
)

var _ = Describe("Collect", func() {
	It("concatenates all content events", func() {
		transcript := "data: {\"choices\":[{\"delta\":{\"content\":\"Hello\"}}]}\n\n" +
			"data: {\"choices\":[{\"delta\":{\"content\":\", world\"}}]}\n\n" +
			"data: [DONE]\n\n"

		text, err := stream.Collect(stream.New(io.NopCloser(strings.NewReader(transcript))))
		Expect(err).NotTo(HaveOccurred())
		Expect(text).To(Equal("Hello, world"))
	})

	It("ignores tool-call events", func() {
		transcript := "data: {\"choices\":[{\"delta\":{\"content\":\"ok\"}}]}\n\n" +
			"data: {\"choices\":[{\"delta\":{\"tool_calls\":[{\"index\":0,\"id\":\"call_a\",\"function\":{\"name\":\"f\",\"arguments\":\"{}\"}}]}}]}\n\n" +
			"data: {\"choices\":[{\"delta\":{},\"finish_reason\":\"tool_calls\"}]}\n\n"

		text, err := stream.Collect(stream.New(io.NopCloser(strings.NewReader(transcript))))
		Expect(err).NotTo(HaveOccurred())
		Expect(text).To(Equal("ok"))
	})

	It("returns gathered content alongside a terminal error", func() {
		readErr := errors.New("boom")
		src := &trackedSource{r: &failingReader{
			data: []byte("data: {\"choices\":[{\"delta\":{\"content\":\"part\"}}]}\n\n"),
			err:  readErr,
		}}

		text, err := stream.Collect(stream.New(src))
		Expect(err).To(MatchError(readErr))
		Expect(text).To(Equal("part"))
	})
})

var _ = Describe("Dispatch", func() {
	It("invokes callbacks synchronously in event order", func() {
		transcript := "data: {\"choices\":[{\"delta\":{\"content\":\"hi\"}}]}\n\n" +
			"data: {\"choices\":[{\"delta\":{\"tool_calls\":[{\"index\":0,\"id\":\"call_a\",\"function\":{\"name\":\"lookup\",\"arguments\":\"{}\"}}]}}]}\n\n" +
			"data: {\"choices\":[{\"delta\":{},\"finish_reason\":\"tool_calls\"}]}\n\n" +
			"data: {\"choices\":[],\"usage\":{\"prompt_tokens\":1,\"completion_tokens\":2,\"total_tokens\":3}}\n\n" +
			"data: [DONE]\n\n"

		var order []string
		var doneUsage *openai.Usage

		err := stream.Dispatch(stream.New(io.NopCloser(strings.NewReader(transcript))), stream.Handler{
			OnContent: func(content string) {
				order = append(order, "content:"+content)
			},
			OnToolCall: func(id, name, arguments string) {
				order = append(order, "tool_call:"+id)
			},
			OnDone: func(usage *openai.Usage) {
				order = append(order, "done")
				doneUsage = usage
			},
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(order).To(Equal([]string{"content:hi", "tool_call:call_a", "done"}))
		Expect(doneUsage).To(Equal(&openai.Usage{PromptTokens: 1, CompletionTokens: 2, TotalTokens: 3}))
	})

	It("tolerates nil callbacks", func() {
		transcript := "data: {\"choices\":[{\"delta\":{\"content\":\"hi\"}}]}\n\ndata: [DONE]\n\n"

		err := stream.Dispatch(stream.New(io.NopCloser(strings.NewReader(transcript))), stream.Handler{})
		Expect(err).NotTo(HaveOccurred())
	})

	It("returns the terminal error after invoking OnError", func() {
		var sawErr error
		err := stream.Dispatch(stream.New(nil), stream.Handler{
			OnError: func(e error) { sawErr = e },
		})

		Expect(err).To(MatchError(stream.ErrNoStream))
		Expect(sawErr).To(MatchError(stream.ErrNoStream))
	})
})
