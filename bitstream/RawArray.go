/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package bitstream

// WriteUint64Array writes every word of words to the stream, 64 bits each,
// the layout every packed-word structure (PackedVector, Bitvector, String)
// persists its backing storage as.
func (this *DefaultOutputBitStream) WriteUint64Array(words []uint64) {
	for _, w := range words {
		this.WriteBits(w, 64)
	}
}

// ReadUint64Array reads n words written by WriteUint64Array.
func (this *DefaultInputBitStream) ReadUint64Array(n int) []uint64 {
	words := make([]uint64, n)

	for i := range words {
		words[i] = this.ReadBits(64)
	}

	return words
}
