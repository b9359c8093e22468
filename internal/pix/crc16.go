package pix

import "fmt"

// CRC16 computes the BR Code trailing checksum: CRC16-CCITT over the payload
// bytes, polynomial 0x1021, initial value 0xFFFF, MSB first, no final XOR.
// The result is rendered as four uppercase hex digits.
func CRC16(payload string) string {
	crc := uint16(0xFFFF)
	for i := 0; i < len(payload); i++ {
		crc ^= uint16(payload[i]) << 8
		for j := 0; j < 8; j++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return fmt.Sprintf("%04X", crc)
}
