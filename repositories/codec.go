package repositories

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// encode serializes a flat record as a protobuf Struct.
// Only structpb compatible values are accepted (string, float64, bool, []any...).
func encode(fields map[string]any) ([]byte, error) {
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return proto.Marshal(s)
}

func decode(value []byte) (*structpb.Struct, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(value, &s); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return &s, nil
}

func stringField(s *structpb.Struct, name string) string {
	return s.GetFields()[name].GetStringValue()
}

func numberField(s *structpb.Struct, name string) float64 {
	return s.GetFields()[name].GetNumberValue()
}

func stringsField(s *structpb.Struct, name string) []string {
	values := s.GetFields()[name].GetListValue().GetValues()
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.GetStringValue()
	}
	return out
}
