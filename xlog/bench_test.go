package xlog_test

import (
	"io"
	"log"
	"testing"

	"strext/xlog"
)

func BenchmarkStdPrint(b *testing.B) {
	log.SetOutput(io.Discard)
	for i := 0; i < b.N; i++ {
		log.Print("hello")
	}
}

func BenchmarkPrint(b *testing.B) {
	xlog.SetOutput(io.Discard)
	for i := 0; i < b.N; i++ {
		xlog.Print("hello")
	}
}
