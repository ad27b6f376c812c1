package bloom

/*

# Similarity digest bloom filters

This package provides the bloom filter at the heart of similarity digests
(sdbf): a fixed size, bit packed set over 32 bit positions that supports
membership tests, insertion, folding, union and a statistical similarity
score between two filters.

A filter is a plain byte slice with an explicit layout. The methods on it
are small and work by index arithmetic over that slice.

## What the filter is (and is not)

If the filter says "definitely not present", the element is not present. If
it says "maybe present", the element may or may not be present. False
positives are an accepted, modelled property.

The filter does not hash content. Callers supply at least HashCount already
computed positions per element and the filter tests or sets the first
HashCount of them.

## Sizing and addressing

Buffers are a power of two bytes, at least 64 (Fold may take a filter down to
32). A position h addresses bit

	pos = h & BitMask()   // BitMask() == 8*Size()-1

which is bit pos&7 (LSB0) of byte pos>>3.

## Word order

Fold, Union, Compare and the hamming weight work on 64 bit words assembled
little-endian from the byte buffer, so results and serialized filters are
identical on every host.

## Records

The text record is two lines:

	sdbf-idx:<size>:<elem_count>:<hash_count>:<bit_mask hex>:<compressed_size>:<name>
	<hex of the LZ4 block compressed buffer>

The compressed size field is only refreshed by UpdateCompressedSize. On read
the bit mask and hamming weight are derived again from the restored buffer.

MarshalBinary produces a deterministic CBOR form of the same information plus
the capacity hints and id.

*/
