package stream

import (
	"strconv"

	"github.com/aws/aws-lambda-go/events"

	"github.com/loomworks/weft/record"
)

// stringAttr returns the string value at key in a stream image, or "".
func stringAttr(image map[string]events.DynamoDBAttributeValue, key string) string {
	av, ok := image[key]
	if !ok || av.DataType() != events.DataTypeString {
		return ""
	}
	return av.String()
}

// attrsFromImage converts a stream image into a plain attribute payload.
// Numbers follow JSON semantics and decode as float64.
func attrsFromImage(image map[string]events.DynamoDBAttributeValue) record.Attrs {
	attrs := make(record.Attrs, len(image))
	for k, av := range image {
		attrs[k] = fromAttributeValue(av)
	}
	return attrs
}

func fromAttributeValue(av events.DynamoDBAttributeValue) any {
	switch av.DataType() {
	case events.DataTypeString:
		return av.String()
	case events.DataTypeNumber:
		n, err := strconv.ParseFloat(av.Number(), 64)
		if err != nil {
			return av.Number()
		}
		return n
	case events.DataTypeBoolean:
		return av.Boolean()
	case events.DataTypeNull:
		return nil
	case events.DataTypeList:
		list := av.List()
		out := make([]any, 0, len(list))
		for _, e := range list {
			out = append(out, fromAttributeValue(e))
		}
		return out
	case events.DataTypeMap:
		m := av.Map()
		out := make(map[string]any, len(m))
		for k, e := range m {
			out[k] = fromAttributeValue(e)
		}
		return out
	case events.DataTypeStringSet:
		return av.StringSet()
	case events.DataTypeNumberSet:
		ns := av.NumberSet()
		out := make([]any, 0, len(ns))
		for _, s := range ns {
			if n, err := strconv.ParseFloat(s, 64); err == nil {
				out = append(out, n)
			}
		}
		return out
	case events.DataTypeBinary:
		return av.Binary()
	}
	return nil
}
