package app

import (
	"github.com/gogo/protobuf/proto"
	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/errors"
)

// ResultsFromKeys returns a ResultSet of all keys
// given a set of models
func ResultsFromKeys(models []hodl.Model) *ResultSet {
	res := make([][]byte, len(models))
	for i, m := range models {
		res[i] = m.Key
	}
	return &ResultSet{Results: res}
}

// ResultsFromValues returns a ResultSet of all values
// given a set of models
func ResultsFromValues(models []hodl.Model) *ResultSet {
	res := make([][]byte, len(models))
	for i, m := range models {
		res[i] = m.Value
	}
	return &ResultSet{Results: res}
}

// JoinResults inverts ResultsFromKeys and ResultsFromValues
// and makes then a consistent whole again
func JoinResults(keys, values *ResultSet) ([]hodl.Model, error) {
	kref, vref := keys.Results, values.Results
	if len(kref) != len(vref) {
		return nil, errors.Wrapf(errors.ErrState, "%d keys, %d values", len(kref), len(vref))
	}
	mods := make([]hodl.Model, len(kref))
	for i := range mods {
		mods[i] = hodl.Model{
			Key:   kref[i],
			Value: vref[i],
		}
	}
	return mods, nil
}

// UnmarshalOneResult will parse a resultset, and
// it if is not empty, unmarshal the first result into o.
// It returns false if the result set is empty.
func UnmarshalOneResult(bz []byte, o proto.Message) (bool, error) {
	var res ResultSet
	if err := proto.Unmarshal(bz, &res); err != nil {
		return false, errors.Wrap(errors.ErrSchema, err.Error())
	}
	if len(res.Results) == 0 {
		return false, nil
	}
	if err := proto.Unmarshal(res.Results[0], o); err != nil {
		return false, errors.Wrap(errors.ErrSchema, err.Error())
	}
	return true, nil
}
