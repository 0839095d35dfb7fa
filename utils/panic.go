package utils

import (
	"github.com/vuuvv/vbits/log"
)

// Catch is deferred directly; it logs a panic and hands the reason to handler.
func Catch(handler func(reason any)) {
	if r := recover(); r != nil {
		log.Error(r)
		handler(r)
	}
}
