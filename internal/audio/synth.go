package audio

import "math"

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat is a gentle saturator that never exceeds [-1,1].
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func makeBuf(n int) []byte { return make([]byte, n*8) }

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundPaddle:
		return genPaddle()
	case SoundWall:
		return genWall()
	case SoundBlock:
		return genBlock()
	case SoundScore:
		return genScore()
	case SoundSplit:
		return genSplit()
	case SoundShrink:
		return genSweep(660, 220)
	case SoundExpand:
		return genSweep(220, 660)
	}
	return nil
}

// genPaddle: short woody FM knock.
func genPaddle() []byte {
	n := int(0.07 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.4, 0.0, 0.1)
		s := fm(t, 440, 1.4, 2.5*env) * env * 0.5
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genWall: lower, duller knock with a breath of noise.
func genWall() []byte {
	n := int(0.06 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(20417)
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := math.Exp(-p * 9)
		lp = lp*0.8 + lcg(&seed)*0.2
		s := (math.Sin(2*math.Pi*220*t)*0.45 + lp*0.2) * env
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genBlock: bright bell ping.
func genBlock() []byte {
	n := int(0.12 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.005, 0.6, 0.05, 0.3)
		s := fm(t, 880, 3.5, 4.0*env) * env * 0.35
		s += math.Sin(2*math.Pi*1760*t) * env * 0.06
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genScore: two-note rising chime, the second ringing over the first.
func genScore() []byte {
	freqs := []float64{523.25, 783.99} // C5 G5
	noteLen := SampleRate * 90 / 1000
	tail := int(0.2 * SampleRate)
	total := len(freqs)*noteLen + tail
	mix := make([]float64, total)

	for fi, freq := range freqs {
		start := fi * noteLen
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.004, 0.55, 0.05, 0.35)
			mix[start+j] += fm(t, freq, 2.756, 4.0*env) * env * 0.36
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genSplit: quick detuned pair that spreads apart.
func genSplit() []byte {
	n := int(0.15 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.2, 0.3)
		spread := 1 + 0.06*p
		s := (math.Sin(2*math.Pi*600*t/spread) + math.Sin(2*math.Pi*600*t*spread)) * env * 0.25
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genSweep glides from one pitch to another; falling for shrink, rising
// for expand.
func genSweep(from, to float64) []byte {
	n := int(0.25 * SampleRate)
	buf := makeBuf(n)
	phase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.3, 0.5, 0.3)
		freq := from + (to-from)*p
		phase += 2 * math.Pi * freq / SampleRate
		s := (math.Sin(phase) + 0.3*math.Sin(2*phase)) * env * 0.35
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}
