package codec

import (
	"fmt"
	"io"
	"strings"

	"github.com/TopiaNetwork/signer/codec/json"
	"github.com/TopiaNetwork/signer/codec/rlp"
)

type CodecType byte

const (
	CodecType_Unknown CodecType = iota
	CodecType_JSON
	CodecType_RLP
)

func (c CodecType) String() string {
	switch c {
	case CodecType_JSON:
		return "json"
	case CodecType_RLP:
		return "rlp"
	}
	return "unknown"
}

func ParseCodecType(s string) (CodecType, error) {
	switch strings.ToLower(s) {
	case "json", "":
		return CodecType_JSON, nil
	case "rlp":
		return CodecType_RLP, nil
	}
	return CodecType_Unknown, fmt.Errorf("unknown codec %q", s)
}

type Marshaler interface {
	Marshal(interface{}) ([]byte, error)

	Unmarshal([]byte, interface{}) error
}

type Encoder interface {
	Encode(interface{}) error
	Reset(w io.Writer)
}

type Decoder interface {
	Decode(interface{}) error
	Reset(r io.Reader)
}

func CreateMarshaler(codecType CodecType) Marshaler {
	switch codecType {
	case CodecType_JSON:
		return &json.MarshalJson{}
	case CodecType_RLP:
		return &rlp.MarshalRlp{}
	default:
		panic(fmt.Errorf("invalid codec type %d when CreateMarshaler", codecType).Error())
	}
}

func CreateEncoder(codecType CodecType, w io.Writer) Encoder {
	switch codecType {
	case CodecType_JSON:
		return json.NewEncoderJson(w)
	case CodecType_RLP:
		return rlp.NewEncoderRlp(w)
	default:
		panic(fmt.Errorf("invalid codec type %d when CreateEncoder", codecType).Error())
	}
}

func CreateDecoder(codecType CodecType, r io.Reader) Decoder {
	switch codecType {
	case CodecType_JSON:
		return json.NewDecoderJson(r)
	case CodecType_RLP:
		return rlp.NewDecoderRlp(r)
	default:
		panic(fmt.Errorf("invalid codec type %d when CreateDecoder", codecType).Error())
	}
}
