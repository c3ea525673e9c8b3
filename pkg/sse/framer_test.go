package sse_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/quarterbyte/chatstream/pkg/sse"
)

var _ = Describe("LineFramer", func() {
	var f *sse.LineFramer

	BeforeEach(func() {
		f = &sse.LineFramer{}
	})

	Describe("Push", func() {
		It("returns complete lines from a single chunk", func() {
			lines := f.Push([]byte("first\nsecond\n"))
			Expect(lines).To(Equal([]string{"first", "second"}))
		})

		It("retains an incomplete trailing segment across pushes", func() {
			lines := f.Push([]byte("data: par"))
			Expect(lines).To(BeEmpty())

			lines = f.Push([]byte("tial\ndata: next"))
			Expect(lines).To(Equal([]string{"data: partial"}))

			Expect(f.Flush()).To(Equal("data: next"))
		})

		It("handles empty chunks", func() {
			Expect(f.Push(nil)).To(BeEmpty())
			Expect(f.Push([]byte{})).To(BeEmpty())

			lines := f.Push([]byte("hello\n"))
			Expect(lines).To(Equal([]string{"hello"}))
		})

		It("emits empty lines for consecutive newlines", func() {
			lines := f.Push([]byte("a\n\nb\n"))
			Expect(lines).To(Equal([]string{"a", "", "b"}))
		})

		It("strips a trailing carriage return", func() {
			lines := f.Push([]byte("data: hi\r\n"))
			Expect(lines).To(Equal([]string{"data: hi"}))
		})

		It("preserves a multi-byte rune split across chunk boundaries", func() {
			raw := []byte("data: héllo 世界\n")

			// Split at every possible byte offset and verify the framed
			// line is identical to the unsplit case.
			for i := 1; i < len(raw); i++ {
				framer := &sse.LineFramer{}
				var lines []string
				lines = append(lines, framer.Push(raw[:i])...)
				lines = append(lines, framer.Push(raw[i:])...)
				Expect(lines).To(Equal([]string{"data: héllo 世界"}), "split at byte %d", i)
			}
		})

		It("replaces invalid UTF-8 with the replacement rune", func() {
			lines := f.Push([]byte{'a', 0xff, 'b', '\n'})
			Expect(lines).To(Equal([]string{"a�b"}))
		})
	})

	Describe("Flush", func() {
		It("returns the final unterminated line", func() {
			f.Push([]byte("data: tail"))
			Expect(f.Flush()).To(Equal("data: tail"))
		})

		It("returns an empty string when nothing is buffered", func() {
			f.Push([]byte("done\n"))
			Expect(f.Flush()).To(BeEmpty())
		})

		It("resets the framer", func() {
			f.Push([]byte("tail"))
			Expect(f.Flush()).To(Equal("tail"))
			Expect(f.Flush()).To(BeEmpty())
		})
	})
})

var _ = Describe("Data", func() {
	It("extracts the payload of a data line", func() {
		payload, ok := sse.Data(`data: {"choices":[]}`)
		Expect(ok).To(BeTrue())
		Expect(payload).To(Equal(`{"choices":[]}`))
	})

	It("strips only a single leading space", func() {
		payload, ok := sse.Data("data:  spaced")
		Expect(ok).To(BeTrue())
		Expect(payload).To(Equal(" spaced"))
	})

	It("accepts a data line with no space after the colon", func() {
		payload, ok := sse.Data("data:[DONE]")
		Expect(ok).To(BeTrue())
		Expect(payload).To(Equal(sse.DoneSentinel))
	})

	It("ignores blank and whitespace-only lines", func() {
		_, ok := sse.Data("")
		Expect(ok).To(BeFalse())

		_, ok = sse.Data("   \t")
		Expect(ok).To(BeFalse())
	})

	It("ignores comment lines", func() {
		_, ok := sse.Data(": keep-alive")
		Expect(ok).To(BeFalse())
	})

	It("ignores non-data fields", func() {
		_, ok := sse.Data("event: message_start")
		Expect(ok).To(BeFalse())

		_, ok = sse.Data("id: 42")
		Expect(ok).To(BeFalse())
	})

	It("ignores lines with no colon", func() {
		_, ok := sse.Data("garbage")
		Expect(ok).To(BeFalse())
	})
})
