// ABOUTME: Global date-keyed maps: sleep hours, sleep quality and body weight.
// ABOUTME: Each map is read and written as a whole object.
package records

// SleepMap returns date → hours slept.
func (b *Book) SleepMap() map[string]float64 {
	return floatMap(b, KeySleepMap)
}

// SaveSleepMap replaces the sleep map.
func (b *Book) SaveSleepMap(m map[string]float64) error {
	return setJSON(b, KeySleepMap, nonNil(m))
}

// BodyWeightMap returns date → body weight in kg.
func (b *Book) BodyWeightMap() map[string]float64 {
	return floatMap(b, KeyBodyWeightMap)
}

// SaveBodyWeightMap replaces the body weight map.
func (b *Book) SaveBodyWeightMap(m map[string]float64) error {
	return setJSON(b, KeyBodyWeightMap, nonNil(m))
}

// SleepQualityMap returns date → quality tag.
func (b *Book) SleepQualityMap() map[string]string {
	m := getJSON[map[string]string](b, KeySleepQualityMap).or(nil)
	if m == nil {
		return map[string]string{}
	}
	return m
}

// SaveSleepQualityMap replaces the sleep quality map.
func (b *Book) SaveSleepQualityMap(m map[string]string) error {
	if m == nil {
		m = map[string]string{}
	}
	return setJSON(b, KeySleepQualityMap, m)
}

func floatMap(b *Book, key string) map[string]float64 {
	m := getJSON[map[string]float64](b, key).or(nil)
	if m == nil {
		return map[string]float64{}
	}
	return m
}

func nonNil(m map[string]float64) map[string]float64 {
	if m == nil {
		return map[string]float64{}
	}
	return m
}
