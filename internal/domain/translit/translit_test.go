package translit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToASCII(t *testing.T) {
	cases := map[string]string{
		"Họ tên:": "Ho ten:",
		"Tổng Số Tiền Lương Thực Nhận": "Tong So Tien Luong Thuc Nhan",
		"Đoàn phí":        "Doan phi",
		"Nguyễn Văn Ánh":  "Nguyen Van Anh",
		"plain ascii 123": "plain ascii 123",
	}
	for in, want := range cases {
		assert.Equal(t, want, ToASCII(in), in)
	}
}

func TestToASCIIDecomposedInput(t *testing.T) {
	// "Việt" with combining marks instead of precomposed runes.
	assert.Equal(t, "Viet", ToASCII("Việt"))
}

func TestToASCIIFallback(t *testing.T) {
	assert.Equal(t, "cafe ?", ToASCII("café €"))
}
