package invalidation

import "crypto/rand"

// ReferenceLength はCallerReferenceの長さ
const ReferenceLength = 16

const referenceAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// NewReference は英数字16文字のランダムなCallerReferenceを生成する
// 一意性は乱数にのみ依存し、衝突は許容する
func NewReference() string {
	// 剰余の偏りが出ないよう、62の倍数未満のバイトのみ採用する
	const limit = 256 - 256%len(referenceAlphabet)

	token := make([]byte, 0, ReferenceLength)
	buf := make([]byte, ReferenceLength*2)
	for len(token) < ReferenceLength {
		rand.Read(buf)
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			token = append(token, referenceAlphabet[int(b)%len(referenceAlphabet)])
			if len(token) == ReferenceLength {
				break
			}
		}
	}
	return string(token)
}
