package response

import (
	"log/slog"

	"github.com/jinzhu/copier"
)

// copyView maps a read-model view onto a response DTO. A mapping error
// means the two structs drifted apart, so surface it instead of
// silently serving a zero-valued body.
func copyView(dst, src any) {
	if err := copier.Copy(dst, src); err != nil {
		slog.Error("response mapping failed", "error", err)
	}
}
