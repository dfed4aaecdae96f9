package inquiry

import (
	"bytes"
	"html/template"
	"strings"
)

// noticeData is what the templates consume. Dates are pre-formatted so the
// templates stay logic-free.
type noticeData struct {
	FullName      string
	FirstName     string
	Email         string
	ContactNumber string
	EventType     string
	EventDateLong string
	EventDate     string
	Venue         string
	Message       string
	BusinessPhone string
}

var ownerNoticeTmpl = template.Must(template.New("owner").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>New Inquiry - Memoriza Events</title></head>
<body style="margin:0;padding:0;font-family:Arial,sans-serif;background-color:#f4f4f4;">
  <table role="presentation" style="width:600px;margin:40px auto;border-collapse:collapse;background-color:#ffffff;">
    <tr>
      <td style="padding:40px 30px;background:#000000;text-align:center;">
        <img src="cid:logo" alt="Memoriza Events Management" style="height:50px;width:auto;margin-bottom:15px;" />
        <h1 style="margin:0;color:#F5C842;font-size:28px;">Memoriza Events Management</h1>
        <p style="margin:10px 0 0;color:#ffffff;font-size:14px;">New Client Inquiry Received</p>
      </td>
    </tr>
    <tr>
      <td style="padding:40px 30px;">
        <p style="margin:0 0 20px;color:#333333;font-size:16px;">A potential client has submitted an inquiry through your website. Here are the details:</p>
        <table role="presentation" style="width:100%;border-collapse:collapse;background-color:#f9f9f9;border-left:4px solid #F5C842;">
          <tr><td style="padding:8px 15px;color:#666666;font-size:13px;text-transform:uppercase;">Full Name</td></tr>
          <tr><td style="padding:4px 15px 12px;color:#333333;font-size:16px;">{{.FullName}}</td></tr>
          <tr><td style="padding:8px 15px;color:#666666;font-size:13px;text-transform:uppercase;">Email Address</td></tr>
          <tr><td style="padding:4px 15px 12px;"><a href="mailto:{{.Email}}" style="color:#F5C842;font-size:16px;">{{.Email}}</a></td></tr>
          <tr><td style="padding:8px 15px;color:#666666;font-size:13px;text-transform:uppercase;">Contact Number</td></tr>
          <tr><td style="padding:4px 15px 12px;"><a href="tel:{{.ContactNumber}}" style="color:#F5C842;font-size:16px;">{{.ContactNumber}}</a></td></tr>
          <tr><td style="padding:8px 15px;color:#666666;font-size:13px;text-transform:uppercase;">Event Type</td></tr>
          <tr><td style="padding:4px 15px 12px;color:#333333;font-size:16px;">{{.EventType}}</td></tr>
          <tr><td style="padding:8px 15px;color:#666666;font-size:13px;text-transform:uppercase;">Requested Event Date</td></tr>
          <tr><td style="padding:4px 15px 12px;color:#333333;font-size:16px;">{{.EventDateLong}}</td></tr>
          <tr><td style="padding:8px 15px;color:#666666;font-size:13px;text-transform:uppercase;">Requested Venue/Location</td></tr>
          <tr><td style="padding:4px 15px 12px;color:#333333;font-size:16px;">{{.Venue}}</td></tr>
          {{if .Message}}
          <tr><td style="padding:8px 15px;color:#666666;font-size:13px;text-transform:uppercase;">Message/Special Requests</td></tr>
          <tr><td style="padding:4px 15px 12px;color:#333333;font-size:15px;">{{.Message}}</td></tr>
          {{end}}
        </table>
        <div style="margin:30px 0;padding:20px;background-color:#FFF9E6;border:1px solid #F5C842;border-radius:8px;">
          <p style="margin:0;color:#666666;font-size:14px;"><strong style="color:#333333;">Quick Action Required:</strong><br>
          Please respond to this inquiry within 48 hours to maintain excellent client service standards.</p>
        </div>
      </td>
    </tr>
    <tr>
      <td style="padding:30px;background-color:#f9f9f9;text-align:center;border-top:3px solid #F5C842;">
        <p style="margin:0 0 10px;color:#999999;font-size:12px;">This email was automatically generated from your Memoriza Events website inquiry form.</p>
        <p style="margin:0;color:#999999;font-size:12px;">Memoriza Events Management &bull; Premium Wedding &amp; Event Coordination</p>
      </td>
    </tr>
  </table>
</body>
</html>
`))

var clientNoticeTmpl = template.Must(template.New("client").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Thank You - Memoriza Events</title></head>
<body style="margin:0;padding:0;font-family:Arial,sans-serif;background-color:#f4f4f4;">
  <table role="presentation" style="width:600px;margin:40px auto;border-collapse:collapse;background-color:#ffffff;">
    <tr>
      <td style="padding:40px 30px;background:#000000;text-align:center;">
        <img src="cid:logo" alt="Memoriza Events Management" style="height:50px;width:auto;margin-bottom:15px;" />
        <h1 style="margin:0;color:#F5C842;font-size:28px;">Memoriza Events Management</h1>
        <p style="margin:10px 0 0;color:#ffffff;font-size:14px;">Premium Wedding &amp; Event Coordination</p>
      </td>
    </tr>
    <tr>
      <td style="padding:40px 30px;">
        <h2 style="margin:0 0 20px;color:#333333;font-size:24px;">Thank You for Your Inquiry!</h2>
        <p style="margin:0 0 20px;color:#333333;font-size:16px;">Dear {{.FirstName}},</p>
        <p style="margin:0 0 20px;color:#333333;font-size:16px;">Thank you for considering Memoriza Events Management for your special occasion. We are truly honored that you've reached out to us, and we're excited about the possibility of bringing your vision to life.</p>
        <p style="margin:0 0 20px;color:#333333;font-size:16px;">We have received your inquiry for a <strong>{{.EventType}}</strong> event scheduled for <strong>{{.EventDateLong}}</strong>, and our team is already reviewing the details you've shared with us.</p>
        <div style="margin:30px 0;padding:25px;background-color:#FFF9E6;border-left:4px solid #F5C842;border-radius:12px;">
          <h3 style="margin:0 0 15px;color:#333333;font-size:18px;">What Happens Next?</h3>
          <ul style="margin:0;padding:0 0 0 20px;color:#555555;font-size:15px;">
            <li style="margin-bottom:10px;">Our team will carefully review your event requirements</li>
            <li style="margin-bottom:10px;">We'll check availability for your preferred date and venue</li>
            <li style="margin-bottom:10px;">A dedicated event coordinator will reach out to you within <strong>48 hours</strong></li>
            <li>You'll receive personalized recommendations tailored to your vision</li>
          </ul>
        </div>
        <div style="margin:30px 0;padding:20px;background-color:#f9f9f9;border-radius:8px;">
          <h3 style="margin:0 0 15px;color:#333333;font-size:16px;">Your Inquiry Summary</h3>
          <table role="presentation" style="width:100%;border-collapse:collapse;">
            <tr><td style="padding:8px 0;color:#666666;font-size:14px;">Event Type:</td><td style="padding:8px 0;color:#333333;font-size:14px;text-align:right;">{{.EventType}}</td></tr>
            <tr><td style="padding:8px 0;color:#666666;font-size:14px;">Preferred Date:</td><td style="padding:8px 0;color:#333333;font-size:14px;text-align:right;">{{.EventDate}}</td></tr>
            <tr><td style="padding:8px 0;color:#666666;font-size:14px;">Location:</td><td style="padding:8px 0;color:#333333;font-size:14px;text-align:right;">{{.Venue}}</td></tr>
          </table>
        </div>
        <p style="margin:0 0 20px;color:#333333;font-size:16px;">In the meantime, feel free to explore our portfolio and services on our website, or reach us directly at <a href="tel:{{.BusinessPhone}}" style="color:#F5C842;">{{.BusinessPhone}}</a> if you have any urgent questions.</p>
        <p style="margin:0 0 10px;color:#333333;font-size:16px;">We look forward to creating unforgettable memories with you!</p>
        <p style="margin:0;color:#333333;font-size:16px;">Warm regards,<br><strong style="color:#F5C842;">The Memoriza Events Team</strong></p>
      </td>
    </tr>
    <tr>
      <td style="padding:30px;background-color:#000000;text-align:center;">
        <p style="margin:0;color:#999999;font-size:12px;">Memoriza Events Management &bull; {{.BusinessPhone}}<br>Premium Wedding &amp; Event Coordination</p>
        <p style="margin:15px 0 0;color:#666666;font-size:11px;">You're receiving this email because you submitted an inquiry through our website.<br>We respect your privacy and will never share your information.</p>
      </td>
    </tr>
  </table>
</body>
</html>
`))

func buildNoticeData(inq Inquiry, businessPhone string) noticeData {
	data := noticeData{
		FullName:      inq.FullName,
		FirstName:     firstToken(inq.FullName),
		Email:         inq.Email,
		ContactNumber: inq.ContactNumber,
		EventType:     inq.EventType,
		EventDateLong: inq.EventDate,
		EventDate:     inq.EventDate,
		Venue:         inq.Venue,
		Message:       inq.Message,
		BusinessPhone: businessPhone,
	}
	if parsed, err := inq.ParsedEventDate(); err == nil {
		data.EventDateLong = parsed.Format("Monday, January 2, 2006")
		data.EventDate = parsed.Format("Jan 2, 2006")
	}
	return data
}

// RenderOwnerNotice produces the business-facing summary document.
func RenderOwnerNotice(inq Inquiry, businessPhone string) (string, error) {
	var buf bytes.Buffer
	if err := ownerNoticeTmpl.Execute(&buf, buildNoticeData(inq, businessPhone)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderClientNotice produces the client-facing acknowledgment document.
func RenderClientNotice(inq Inquiry, businessPhone string) (string, error) {
	var buf bytes.Buffer
	if err := clientNoticeTmpl.Execute(&buf, buildNoticeData(inq, businessPhone)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func firstToken(fullName string) string {
	fields := strings.Fields(fullName)
	if len(fields) == 0 {
		return fullName
	}
	return fields[0]
}
