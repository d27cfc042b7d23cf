package utils

import (
	"iter"
	"strconv"
	"strings"

	"github.com/segmentio/ksuid"
)

type IdGenerator func() string

func NewId() string {
	return ksuid.New().String()
}

func P[T any](src T) *T {
	return &src
}

// SplitLabels splits a comma separated list, trimming blanks and dropping empty entries.
func SplitLabels(src string) []string {
	list := make([]string, 0)

	for label := range LabelsIter(src) {
		list = append(list, label)
	}

	return list
}

func LabelsIter(src string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if strings.TrimSpace(src) == "" {
			return
		}

		for _, part := range strings.Split(src, ",") {
			label := strings.TrimSpace(part)

			if label == "" {
				continue
			}

			if !yield(label) {
				return
			}
		}
	}
}

func SequenceIds(prefix string) IdGenerator {
	n := 0

	return func() string {
		n++
		return prefix + strconv.Itoa(n)
	}
}
