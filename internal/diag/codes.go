package diag

import "fmt"

// Code identifies a diagnostic class in the error index. Warnings and
// errors number independently, so the Error flag is part of the identity.
type Code struct {
	Num   uint8
	Error bool
}

func (c Code) String() string {
	if c.Error {
		return fmt.Sprintf("E%03d", c.Num)
	}
	return fmt.Sprintf("W%03d", c.Num)
}

// DocLink returns the error-index URL for the code.
func (c Code) DocLink() string {
	return "https://github.com/TerbiumLang/standard/blob/main/error_index.md#" + c.String()
}

// WarnCode builds a warning code.
func WarnCode(num uint8) Code {
	return Code{Num: num}
}

// ErrCode builds an error code.
func ErrCode(num uint8) Code {
	return Code{Num: num, Error: true}
}
