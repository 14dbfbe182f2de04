package dms

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/danmuck/qmigen/internal/testutil/testlog"
	"github.com/danmuck/qmigen/pkg/qmi"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var getIDsResponse = []byte{
	0x25, 0x00, 0x39, 0x00,
	0x02, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x13, 0x01, 0x00, 0x42,
	0x12, 0x0e, 0x00, '3', '5', '9', '2', '2', '5', '0', '5', '0', '0', '3', '9', '9', '7',
	0x10, 0x08, 0x00, '8', '0', '9', '9', '7', '8', '7', '4',
	0x11, 0x0f, 0x00, '3', '5', '9', '2', '2', '5', '0', '5', '0', '0', '3', '9', '9', '7', '3',
}

func parse(t *testing.T, raw []byte) *qmi.Message {
	t.Helper()
	msg, err := qmi.ParseMessage(raw)
	if err != nil {
		t.Fatalf("parse message: %v", err)
	}
	return msg
}

func TestParseGetIDsResponse(t *testing.T) {
	testlog.Start(t)
	out, err := ParseGetIDsOutput(parse(t, getIDsResponse))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	status, code, err := out.GetResult()
	if err != nil || status != StatusSuccess || code != ProtocolErrorNone {
		t.Fatalf("unexpected result: %v %v %v", status, code, err)
	}
	for _, tc := range []struct {
		name string
		get  func() (string, error)
		want string
	}{
		{"ESN", out.GetESN, "80997874"},
		{"IMEI", out.GetIMEI, "359225050039973"},
		{"MEID", out.GetMEID, "35922505003997"},
		{"IMEI Software Version", out.GetIMEISoftwareVersion, "B"},
	} {
		got, err := tc.get()
		if err != nil || got != tc.want {
			t.Fatalf("%s: got %q (%v), want %q", tc.name, got, err, tc.want)
		}
	}
}

func TestEncodeGetIDsResponseRoundTrip(t *testing.T) {
	testlog.Start(t)
	in := &GetIDsOutput{}
	if err := in.SetResult(StatusSuccess, ProtocolErrorNone); err != nil {
		t.Fatalf("set result: %v", err)
	}
	if err := in.SetESN("80997874"); err != nil {
		t.Fatalf("set esn: %v", err)
	}
	if err := in.SetIMEISoftwareVersion("B"); err != nil {
		t.Fatalf("set imeisv: %v", err)
	}
	msg, err := in.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := []byte{
		0x25, 0x00, 0x16, 0x00,
		0x02, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x10, 0x08, 0x00, '8', '0', '9', '9', '7', '8', '7', '4',
		0x13, 0x01, 0x00, 0x42,
	}
	if !bytes.Equal(msg.Bytes(), want) {
		t.Fatalf("unexpected encoding:\n got % x\nwant % x", msg.Bytes(), want)
	}

	out, err := ParseGetIDsOutput(parse(t, msg.Bytes()))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if esn, err := out.GetESN(); err != nil || esn != "80997874" {
		t.Fatalf("unexpected ESN: %q %v", esn, err)
	}
	if _, err := out.GetIMEI(); !errors.Is(err, qmi.ErrFieldNotFound) {
		t.Fatalf("expected ErrFieldNotFound for unset IMEI, got %v", err)
	}
}

func TestEncodeSkipsTLVsWhosePrerequisitesFail(t *testing.T) {
	testlog.Start(t)
	in := &GetIDsOutput{}
	_ = in.SetResult(StatusFailure, ProtocolErrorInternal)
	_ = in.SetESN("80997874")
	_ = in.SetIMEI("359225050039973")
	msg, err := in.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := []byte{0x25, 0x00, 0x07, 0x00, 0x02, 0x04, 0x00, 0x01, 0x00, 0x03, 0x00}
	if !bytes.Equal(msg.Bytes(), want) {
		t.Fatalf("identifiers must be skipped on failure: % x", msg.Bytes())
	}
}

func TestEncodeVerifyPINRequest(t *testing.T) {
	testlog.Start(t)
	in := &UIMVerifyPINInput{}
	if err := in.SetInfo(UIMPINIDPIN1, "1234"); err != nil {
		t.Fatalf("set info: %v", err)
	}
	msg, err := in.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := []byte{0x28, 0x00, 0x09, 0x00, 0x01, 0x06, 0x00, 0x01, 0x04, '1', '2', '3', '4'}
	if !bytes.Equal(msg.Bytes(), want) {
		t.Fatalf("unexpected encoding: % x", msg.Bytes())
	}

	back, err := ParseUIMVerifyPINInput(parse(t, want))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	id, pin, err := back.GetInfo()
	if err != nil || id != UIMPINIDPIN1 || pin != "1234" {
		t.Fatalf("unexpected info: %v %q %v", id, pin, err)
	}
}

func TestEncodeVerifyPINRequiresInfo(t *testing.T) {
	testlog.Start(t)
	_, err := (&UIMVerifyPINInput{}).Encode()
	if !errors.Is(err, qmi.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if !strings.Contains(err.Error(), "'Info'") || !strings.Contains(err.Error(), "'UIM Verify PIN'") {
		t.Fatalf("error must name the TLV and the message: %v", err)
	}
}

func TestSetInfoRejectsLongPIN(t *testing.T) {
	testlog.Start(t)
	in := &UIMVerifyPINInput{}
	if err := in.SetInfo(UIMPINIDPIN2, strings.Repeat("9", 256)); !errors.Is(err, qmi.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if _, _, err := in.GetInfo(); !errors.Is(err, qmi.ErrFieldNotFound) {
		t.Fatalf("a rejected set must not mark the field present, got %v", err)
	}
}

func TestParseVerifyPINResponse(t *testing.T) {
	testlog.Start(t)
	out, err := ParseUIMVerifyPINOutput(parse(t, []byte{0x28, 0x00, 0x07, 0x00, 0x02, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00}))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if status, _, err := out.GetResult(); err != nil || status != StatusSuccess {
		t.Fatalf("unexpected result: %v %v", status, err)
	}
	if _, _, err := out.GetPINRetriesStatus(); !errors.Is(err, qmi.ErrFieldNotFound) {
		t.Fatalf("expected ErrFieldNotFound for an absent optional TLV, got %v", err)
	}
}

func TestParseGetPINStatusResponse(t *testing.T) {
	testlog.Start(t)
	raw := []byte{
		0x2b, 0x00, 0x13, 0x00,
		0x02, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x12, 0x03, 0x00, 0x01, 0x02, 0x0a,
		0x11, 0x03, 0x00, 0x01, 0x03, 0x0a,
	}
	out, err := ParseUIMGetPINStatusOutput(parse(t, raw))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	status, verify, unblock, err := out.GetPIN1Status()
	if err != nil || status != UIMPINStatusEnabledNotVerified || verify != 3 || unblock != 10 {
		t.Fatalf("unexpected PIN1 status: %v %d %d %v", status, verify, unblock, err)
	}
	status, verify, unblock, err = out.GetPIN2Status()
	if err != nil || status != UIMPINStatusEnabledNotVerified || verify != 2 || unblock != 10 {
		t.Fatalf("unexpected PIN2 status: %v %d %d %v", status, verify, unblock, err)
	}

	text, ok := PrintableMessage(parse(t, raw), "<< ", qmi.Response)
	if !ok {
		t.Fatalf("PrintableMessage must know Get PIN Status responses")
	}
	want := "<<   translated = [ current_status = 'enabled-not-verified' verify_retries_left = '3' unblock_retries_left = '10' ]\n"
	if !strings.Contains(text, want) {
		t.Fatalf("missing %q in:\n%s", want, text)
	}
}

func TestParseMissingMandatoryResult(t *testing.T) {
	testlog.Start(t)
	raw := []byte{0x25, 0x00, 0x0b, 0x00, 0x10, 0x08, 0x00, '8', '0', '9', '9', '7', '8', '7', '4'}
	out, err := ParseGetIDsOutput(parse(t, raw))
	if !errors.Is(err, qmi.ErrFieldNotFound) || out != nil {
		t.Fatalf("expected ErrFieldNotFound, got %v %v", out, err)
	}
}

func TestParseTruncatedResult(t *testing.T) {
	testlog.Start(t)
	raw := []byte{0x25, 0x00, 0x06, 0x00, 0x02, 0x03, 0x00, 0x00, 0x00, 0x00}
	_, err := ParseGetIDsOutput(parse(t, raw))
	if !errors.Is(err, qmi.ErrTruncatedInput) {
		t.Fatalf("expected ErrTruncatedInput, got %v", err)
	}
	if !strings.Contains(err.Error(), "'Result'") {
		t.Fatalf("error must name the TLV: %v", err)
	}
}

func TestParseRejectsOtherMessageIDs(t *testing.T) {
	testlog.Start(t)
	_, err := ParseGetIDsOutput(parse(t, []byte{0x28, 0x00, 0x07, 0x00, 0x02, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00}))
	if !errors.Is(err, qmi.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestParseLeftoverBytesOnlyWarn(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	raw := []byte{0x28, 0x00, 0x08, 0x00, 0x02, 0x05, 0x00, 0x00, 0x00, 0x00, 0x00, 0xff}
	out, err := ParseUIMVerifyPINOutput(parse(t, raw))
	if err != nil {
		t.Fatalf("leftover bytes must not fail the parse: %v", err)
	}
	if status, _, err := out.GetResult(); err != nil || status != StatusSuccess {
		t.Fatalf("unexpected result: %v %v", status, err)
	}
	if !strings.Contains(buf.String(), "left '1' bytes unread when getting the 'Result' TLV") {
		t.Fatalf("expected a warning, got %q", buf.String())
	}
}

func TestGettersOnNilAndReleasedBundles(t *testing.T) {
	testlog.Start(t)
	var nilOut *GetIDsOutput
	if _, err := nilOut.GetESN(); !errors.Is(err, qmi.ErrFieldNotFound) {
		t.Fatalf("expected ErrFieldNotFound on nil bundle, got %v", err)
	}
	nilOut.Release()

	out, err := ParseGetIDsOutput(parse(t, getIDsResponse))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	out.Release()
	out.Release()
	if _, err := out.GetIMEI(); !errors.Is(err, qmi.ErrFieldNotFound) {
		t.Fatalf("expected ErrFieldNotFound after release, got %v", err)
	}
	if _, _, err := out.GetResult(); !errors.Is(err, qmi.ErrFieldNotFound) {
		t.Fatalf("expected ErrFieldNotFound after release, got %v", err)
	}
}

func TestPrintableHidesPersonalInfo(t *testing.T) {
	testlog.Start(t)
	qmi.SetShowPersonalInfo(false)
	text := PrintableGetIDsOutput(parse(t, getIDsResponse), "")
	if strings.Contains(text, "80997874") || strings.Contains(text, "359225050039973") {
		t.Fatalf("identifiers leaked:\n%s", text)
	}
	for _, want := range []string{
		"message     = \"Get IDs\" (0x0025)\n",
		"  type       = \"ESN\" (0x10)\n",
		"  value      = '###'\n",
		"  translated = [ error_status = 'success' error_code = 'none' ]\n",
		"  translated = B\n",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("missing %q in:\n%s", want, text)
		}
	}

	qmi.SetShowPersonalInfo(true)
	t.Cleanup(func() { qmi.SetShowPersonalInfo(false) })
	text = PrintableGetIDsOutput(parse(t, getIDsResponse), "")
	if !strings.Contains(text, "  translated = 80997874\n") {
		t.Fatalf("expected ESN when personal info is shown:\n%s", text)
	}
}

func TestPrintableMessageDispatch(t *testing.T) {
	testlog.Start(t)
	if _, ok := PrintableMessage(parse(t, getIDsResponse), "", qmi.Indication); ok {
		t.Fatalf("DMS defines no indications")
	}
	if _, ok := PrintableMessage(qmi.NewMessage(0x0099), "", qmi.Request); ok {
		t.Fatalf("unknown ids are not translated")
	}
	text, ok := PrintableMessage(qmi.NewMessage(MessageGetIDs), "", qmi.Request)
	if !ok || !strings.Contains(text, "tlv_length  = 0\n") {
		t.Fatalf("unexpected request rendering %v:\n%s", ok, text)
	}
}

func TestEnumStrings(t *testing.T) {
	if got := UIMPINStatusPermanentlyBlocked.String(); got != "permanently-blocked" {
		t.Fatalf("unexpected nickname: %s", got)
	}
	if got := UIMPINID(9).String(); got != "unknown (9)" {
		t.Fatalf("unexpected fallback: %s", got)
	}
}
