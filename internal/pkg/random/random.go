package random

import (
	"crypto/rand"
	"encoding/binary"
	"strconv"
	"time"
)

const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890"

// Generate returns a random alphanumeric string of the given length, used as
// refresh-secret material.
//
// Entropy comes from a crypto/rand shuffle of the alphabet. The unix-nano
// timestamp only pads requests longer than one alphabet; it is never the
// primary source.
func Generate(length int) (string, error) {
	if length <= 0 {
		return "", nil
	}

	out, err := shuffledAlphabet()
	if err != nil {
		return "", err
	}
	for len(out) < length {
		next, err := shuffledAlphabet()
		if err != nil {
			return "", err
		}
		out += strconv.FormatInt(time.Now().UnixNano(), 10) + next
	}
	return out[:length], nil
}

func shuffledAlphabet() (string, error) {
	b := []byte(alphabet)
	var buf [8]byte
	for i := len(b) - 1; i > 0; i-- {
		if _, err := rand.Read(buf[:]); err != nil {
			return "", err
		}
		j := binary.BigEndian.Uint64(buf[:]) % uint64(i+1)
		b[i], b[j] = b[j], b[i]
	}
	return string(b), nil
}
