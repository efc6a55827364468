package main

import (
	"fmt"
	"log"

	"github.com/basis-health/wiresplice"
	"github.com/basis-health/wiresplice/wire"
)

// Demonstrates the proxy use case: a forwarded payload carries a full
// nested user message, but the downstream consumer only needs its uid.
// The nested frame is collapsed to a single scalar in place, and later
// restored from the displaced bytes without ever decoding the rest of
// the message.
func main() {
	// Nested user: field 1 = name, field 2 = uid
	user := wire.NewEncoder()
	user.EncodeField(1, wire.WireBytes, []byte("Alice"))
	user.EncodeField(2, wire.WireBytes, []byte("u-123"))

	// Outer summary: field 1 = count, field 2 = user message
	summary := wire.NewEncoder()
	summary.EncodeField(1, wire.WireVarint, []byte{0x01})
	summary.EncodeField(2, wire.WireBytes, user.Bytes())

	buf := append([]byte(nil), summary.Bytes()...)
	fmt.Printf("original payload:  %x (%d bytes)\n", buf, len(buf))

	// Collapse field 2 from the whole user message down to its uid
	uid, ok := wiresplice.Extract(user.Bytes(), 2)
	if !ok {
		log.Fatal("uid not found in user message")
	}
	uidFrame := append(wiresplice.Header(2, wire.WireBytes, uid), uid...)

	oldUser, ok := wiresplice.Replace(&buf, 2, uidFrame)
	if !ok {
		log.Fatal("user field not found in summary")
	}
	fmt.Printf("collapsed payload: %x (%d bytes)\n", buf, len(buf))

	value, _ := wiresplice.Extract(buf, 2)
	fmt.Printf("field 2 now reads: %q\n", value)

	// Restore the original nested frame from the displaced bytes
	userFrame := append(wiresplice.Header(2, wire.WireBytes, oldUser), oldUser...)
	if _, ok := wiresplice.Replace(&buf, 2, userFrame); !ok {
		log.Fatal("restore failed")
	}
	fmt.Printf("restored payload:  %x (%d bytes)\n", buf, len(buf))

	for _, field := range wiresplice.ExtractAll(buf, 1, 2) {
		fmt.Printf("  field %d: %x\n", field.Number, field.Value)
	}
}
